package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/educator/internal/client"
	"github.com/abhisek/educator/internal/generate"
)

var generateCmd = &cobra.Command{
	Use:   "generate <prompt>",
	Short: "Generate educational content from the command line",
	Long: `Send a one-shot generation request to the educator API and print the result.

The server must be running (educator serve). Example:

  educator generate "What is photosynthesis" --type quiz --max-length 600`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt := strings.Join(args, " ")
		contentType, _ := cmd.Flags().GetString("type")
		contextText, _ := cmd.Flags().GetString("context")
		maxLength, _ := cmd.Flags().GetInt("max-length")
		temperature, _ := cmd.Flags().GetFloat64("temperature")
		topP, _ := cmd.Flags().GetFloat64("top-p")

		req := generate.NewRequest(prompt, generate.ContentType(contentType), contextText)
		if cmd.Flags().Changed("max-length") {
			req.MaxLength = maxLength
		}
		if cmd.Flags().Changed("temperature") {
			req.Temperature = temperature
		}
		if cmd.Flags().Changed("top-p") {
			req.TopP = topP
		}

		if err := generate.Validate(req); err != nil {
			return err
		}

		api := client.New(apiBaseURL(cmd))
		resp, err := api.Generate(cmd.Context(), req)
		if err != nil {
			return err
		}
		if !resp.Success {
			if resp.Error != "" {
				return fmt.Errorf("generation failed: %s", resp.Error)
			}
			return fmt.Errorf("generation failed")
		}

		if out, _ := cmd.Flags().GetString("output"); out != "" {
			if err := os.WriteFile(out, []byte(resp.GeneratedText+"\n"), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Println("Saved to", out)
			return nil
		}

		fmt.Println(resp.GeneratedText)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("type", "t", string(generate.TypeExplanation),
		"Content type (explanation, summary, quiz, lesson, example, definition)")
	generateCmd.Flags().String("context", "", "Additional context for the generation")
	generateCmd.Flags().Int("max-length", generate.DefaultLength, "Maximum response length in tokens")
	generateCmd.Flags().Float64("temperature", generate.DefaultTemperature, "Sampling temperature")
	generateCmd.Flags().Float64("top-p", generate.DefaultTopP, "Nucleus sampling threshold")
	generateCmd.Flags().StringP("output", "o", "", "Write the generated text to a file instead of stdout")
}
