package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/mnightingale/morse"
	"github.com/mnightingale/morse/internal/logging"
)

func newTextToMorseCommand(a *app) *cobra.Command {
	var (
		src, dst   string
		stopMarker bool
		trim       bool
	)

	cmd := &cobra.Command{
		Use:   "text-to-morse",
		Short: "Pack text into binary Morse code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("stop-marker") {
				stopMarker = a.cfg.StopMarker
			}
			if !cmd.Flags().Changed("trim") {
				trim = a.cfg.TrimInput
			}

			in, err := readSource(cmd, src)
			if err != nil {
				return err
			}
			text := string(in)
			if trim {
				text = strings.TrimSpace(text)
			}

			var opts []morse.EncoderOption
			if stopMarker {
				opts = append(opts, morse.WithStopMarker())
			}
			encoded, err := morse.NewEncoder(opts...).Encode(text)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			a.log.Debug().
				Int("chars", utf8.RuneCountInString(text)).
				Int("bytes", len(encoded)).
				Bool("stop_marker", stopMarker).
				Msg("encoded")

			if dst == "" && logging.IsTerminal(cmd.OutOrStdout()) {
				a.log.Warn().Msg("writing binary output to a terminal")
			}
			return writeDestination(cmd, dst, encoded)
		},
	}

	cmd.Flags().StringVarP(&src, "src", "s", "", "source of the translation (default stdin)")
	cmd.Flags().StringVarP(&dst, "dst", "d", "", "destination of the translation (default stdout)")
	cmd.Flags().BoolVar(&stopMarker, "stop-marker", false, "terminate the message with a stop symbol so trailing spaces survive decoding")
	cmd.Flags().BoolVar(&trim, "trim", true, "trim surrounding whitespace from the input")

	return cmd
}

func newMorseToTextCommand(a *app) *cobra.Command {
	var src, dst string

	cmd := &cobra.Command{
		Use:   "morse-to-text",
		Short: "Unpack binary Morse code into text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := readSource(cmd, src)
			if err != nil {
				return err
			}

			text, err := morse.Decode(in)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}
			a.log.Debug().
				Int("bytes", len(in)).
				Int("chars", utf8.RuneCountInString(text)).
				Msg("decoded")

			return writeDestination(cmd, dst, []byte(text))
		},
	}

	cmd.Flags().StringVarP(&src, "src", "s", "", "source of the translation (default stdin)")
	cmd.Flags().StringVarP(&dst, "dst", "d", "", "destination of the translation (default stdout)")

	return cmd
}

func readSource(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return b, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return b, nil
}

func writeDestination(cmd *cobra.Command, path string, b []byte) error {
	if path == "" {
		if _, err := cmd.OutOrStdout().Write(b); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
