package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	todohttp "github.com/jaekwang-park/todolist-api/internal/http"
)

var openapiCmd = &cobra.Command{
	Use:   "openapi",
	Short: "Print the OpenAPI document as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := json.MarshalIndent(todohttp.OpenAPI(cfg.APIPrefix), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode openapi document: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return err
	},
}
