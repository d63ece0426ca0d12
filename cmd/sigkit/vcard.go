package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sigkit/pkg/qrcode"
	"github.com/dmitrymomot/sigkit/pkg/vcard"
)

type vcardOptions struct {
	file   string
	output string
	size   int
	text   bool
}

func newVCardCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &vcardOptions{}

	cmd := &cobra.Command{
		Use:   "vcard",
		Short: "Encode a contact file as a vCard QR code",
		Example: `  sigkit vcard -f contact.yaml -o card.png
  sigkit vcard -f contact.yaml --text`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, rootFlags)
			if err != nil {
				return err
			}
			c, err := readContactFile(opts.file)
			if err != nil {
				return err
			}

			card, err := vcard.Build(c.ContactRecord, vcard.WithOrganization(a.gen.Assets().Brand()))
			if err != nil {
				return err
			}
			if opts.text {
				return writeOutput(cmd.OutOrStdout(), opts.output, []byte(card))
			}

			png, err := qrcode.Generate(card, opts.size)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.output, png)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Contact YAML file (- for stdin)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write here instead of stdout")
	cmd.Flags().IntVar(&opts.size, "size", qrcode.DefaultSize, "QR image edge in pixels")
	cmd.Flags().BoolVar(&opts.text, "text", false, "Print the vCard instead of a QR code")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
