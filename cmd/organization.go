package cmd

import (
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

func NewOrganizationCmd(log logr.Logger) *cobra.Command {
	organizationCommand := &cobra.Command{
		Use:   "organization",
		Short: "Manage organizations, users and roles",
	}

	organizationCommand.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List organizations",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			organizations, err := client.ListOrganizations()
			if err != nil {
				return err
			}
			return printResult(organizations)
		},
	})

	var viewID string
	viewCommand := &cobra.Command{
		Use:   "view",
		Short: "View an organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			organization, err := client.GetOrganization(viewID)
			if err != nil {
				return err
			}
			return printResult(organization)
		},
	}
	viewCommand.Flags().StringVar(&viewID, "organizationId", "", "Organization ID (UUID format)")
	viewCommand.MarkFlagRequired("organizationId")
	organizationCommand.AddCommand(viewCommand)

	var usersOrgID string
	usersCommand := &cobra.Command{
		Use:   "users",
		Short: "List organization users and pending invitations",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			users, err := client.ListOrganizationUsers(usersOrgID)
			if err != nil {
				return err
			}
			return printResult(users)
		},
	}
	usersCommand.Flags().StringVar(&usersOrgID, "organizationId", "", "Organization ID (UUID format)")
	usersCommand.MarkFlagRequired("organizationId")
	organizationCommand.AddCommand(usersCommand)

	var inviteOrgID, inviteEmail string
	var inviteRoles []string
	inviteCommand := &cobra.Command{
		Use:   "invite",
		Short: "Invite a user to an organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			result, err := client.InviteUser(inviteOrgID, inviteEmail, inviteRoles)
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}
	inviteCommand.Flags().StringVar(&inviteOrgID, "organizationId", "", "Organization ID (UUID format)")
	inviteCommand.Flags().StringVar(&inviteEmail, "email", "", "Email address to invite")
	inviteCommand.Flags().StringSliceVar(&inviteRoles, "role", nil, "Role to grant (repeatable)")
	inviteCommand.MarkFlagRequired("organizationId")
	inviteCommand.MarkFlagRequired("email")
	organizationCommand.AddCommand(inviteCommand)

	var reInviteOrgID, reInviteEmail string
	reInviteCommand := &cobra.Command{
		Use:   "re-invite",
		Short: "Resend a pending invitation",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			result, err := client.ReInviteUser(reInviteOrgID, reInviteEmail)
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}
	reInviteCommand.Flags().StringVar(&reInviteOrgID, "organizationId", "", "Organization ID (UUID format)")
	reInviteCommand.Flags().StringVar(&reInviteEmail, "email", "", "Email address of the pending invitation")
	reInviteCommand.MarkFlagRequired("organizationId")
	reInviteCommand.MarkFlagRequired("email")
	organizationCommand.AddCommand(reInviteCommand)

	var removeInvOrgID, removeInvEmail string
	removeInvitationCommand := &cobra.Command{
		Use:   "remove-invitation",
		Short: "Cancel a pending invitation",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			return client.RemoveInvitation(removeInvOrgID, removeInvEmail)
		},
	}
	removeInvitationCommand.Flags().StringVar(&removeInvOrgID, "organizationId", "", "Organization ID (UUID format)")
	removeInvitationCommand.Flags().StringVar(&removeInvEmail, "email", "", "Email address of the pending invitation")
	removeInvitationCommand.MarkFlagRequired("organizationId")
	removeInvitationCommand.MarkFlagRequired("email")
	organizationCommand.AddCommand(removeInvitationCommand)

	var removeUserOrgID, removeUserID string
	removeUserCommand := &cobra.Command{
		Use:   "remove-user",
		Short: "Remove a user from an organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			return client.RemoveUser(removeUserOrgID, removeUserID)
		},
	}
	removeUserCommand.Flags().StringVar(&removeUserOrgID, "organizationId", "", "Organization ID (UUID format)")
	removeUserCommand.Flags().StringVar(&removeUserID, "userId", "", "User ID (UUID format)")
	removeUserCommand.MarkFlagRequired("organizationId")
	removeUserCommand.MarkFlagRequired("userId")
	organizationCommand.AddCommand(removeUserCommand)

	organizationCommand.AddCommand(newOrganizationRoleCmd(log))

	var subName string
	createSubCommand := &cobra.Command{
		Use:   "create-sub",
		Short: "Create a sub-organization under the current organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			organization, err := client.CreateSubOrganization(subName)
			if err != nil {
				return err
			}
			return printResult(organization)
		},
	}
	createSubCommand.Flags().StringVar(&subName, "name", "", "Sub-organization name")
	createSubCommand.MarkFlagRequired("name")
	organizationCommand.AddCommand(createSubCommand)

	return organizationCommand
}

func newOrganizationRoleCmd(log logr.Logger) *cobra.Command {
	roleCommand := &cobra.Command{
		Use:   "role",
		Short: "Manage a user's roles within an organization",
	}

	var viewOrgID, viewUserID string
	viewCommand := &cobra.Command{
		Use:   "view",
		Short: "View a user's roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			roles, err := client.GetUserRoles(viewOrgID, viewUserID)
			if err != nil {
				return err
			}
			return printResult(roles)
		},
	}
	viewCommand.Flags().StringVar(&viewOrgID, "organizationId", "", "Organization ID (UUID format)")
	viewCommand.Flags().StringVar(&viewUserID, "userId", "", "User ID (UUID format)")
	viewCommand.MarkFlagRequired("organizationId")
	viewCommand.MarkFlagRequired("userId")
	roleCommand.AddCommand(viewCommand)

	var addOrgID, addUserID string
	var addRoles []string
	addCommand := &cobra.Command{
		Use:   "add",
		Short: "Grant roles to a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			result, err := client.AddUserRoles(addOrgID, addUserID, addRoles)
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}
	addCommand.Flags().StringVar(&addOrgID, "organizationId", "", "Organization ID (UUID format)")
	addCommand.Flags().StringVar(&addUserID, "userId", "", "User ID (UUID format)")
	addCommand.Flags().StringSliceVar(&addRoles, "role", nil, "Role to grant (repeatable)")
	addCommand.MarkFlagRequired("organizationId")
	addCommand.MarkFlagRequired("userId")
	addCommand.MarkFlagRequired("role")
	roleCommand.AddCommand(addCommand)

	var removeOrgID, removeUserID string
	var removeRoles []string
	removeCommand := &cobra.Command{
		Use:   "remove",
		Short: "Revoke roles from a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			return client.RemoveUserRoles(removeOrgID, removeUserID, removeRoles)
		},
	}
	removeCommand.Flags().StringVar(&removeOrgID, "organizationId", "", "Organization ID (UUID format)")
	removeCommand.Flags().StringVar(&removeUserID, "userId", "", "User ID (UUID format)")
	removeCommand.Flags().StringSliceVar(&removeRoles, "role", nil, "Role to revoke (repeatable)")
	removeCommand.MarkFlagRequired("organizationId")
	removeCommand.MarkFlagRequired("userId")
	removeCommand.MarkFlagRequired("role")
	roleCommand.AddCommand(removeCommand)

	var clearOrgID, clearUserID string
	clearCommand := &cobra.Command{
		Use:   "clear",
		Short: "Revoke all of a user's roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(log)
			if err != nil {
				return err
			}
			return client.ClearUserRoles(clearOrgID, clearUserID)
		},
	}
	clearCommand.Flags().StringVar(&clearOrgID, "organizationId", "", "Organization ID (UUID format)")
	clearCommand.Flags().StringVar(&clearUserID, "userId", "", "User ID (UUID format)")
	clearCommand.MarkFlagRequired("organizationId")
	clearCommand.MarkFlagRequired("userId")
	roleCommand.AddCommand(clearCommand)

	return roleCommand
}
