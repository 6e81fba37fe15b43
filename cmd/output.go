package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// printResult writes v to stdout in the format selected by --output.
func printResult(v interface{}) error {
	switch outputFormat {
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to render yaml output: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to render json output: %w", err)
		}
		_, err = fmt.Println(string(data))
		return err
	}
}
