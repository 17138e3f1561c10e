package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	pngcrypt "github.com/shepherd1530/PNGCrypt"
)

// Build information, set via ldflags.
var (
	version = "0.1.0"
	commit  = "unknown"
)

// newApp creates the CLI application.
func newApp() *cli.App {
	return &cli.App{
		Name:    "pngcrypt",
		Usage:   "embed secret messages in PNG images",
		Version: fmt.Sprintf("%s (commit: %s)", version, commit),
		Commands: []*cli.Command{
			encodeCommand(),
			decodeCommand(),
			removeCommand(),
			printCommand(),
		},
	}
}

func fileFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Usage:    "path to the PNG image",
		Required: true,
	}
}

func tokenFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "token",
		Aliases:  []string{"t"},
		Usage:    "token returned by encode",
		Required: true,
	}
}

// encodeCommand embeds a message and prints the token.
func encodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "encode",
		Usage: "hide a message in a PNG image",
		Flags: []cli.Flag{
			fileFlag(),
			&cli.StringFlag{
				Name:     "message",
				Aliases:  []string{"m"},
				Usage:    "message to embed",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output path (default: rewrite the input file)",
			},
		},
		Action: func(c *cli.Context) error {
			img, err := pngcrypt.Open(c.String("file"))
			if err != nil {
				return err
			}

			token, err := img.Embed([]byte(c.String("message")))
			if err != nil {
				return err
			}

			output := c.String("output")
			if output == "" {
				output = c.String("file")
			}
			if err := img.SaveAs(output, pngcrypt.WithValidation()); err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer,
				"Secret encoded into %s.\nThe token is %s; keep it a secret, it is needed to decode your message.\n",
				output, token)
			return nil
		},
	}
}

// decodeCommand prints the message hidden under a token.
func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "decode",
		Usage: "recover a hidden message",
		Flags: []cli.Flag{
			fileFlag(),
			tokenFlag(),
		},
		Action: func(c *cli.Context) error {
			img, err := pngcrypt.Open(c.String("file"))
			if err != nil {
				return err
			}

			payload, err := img.Extract(c.String("token"))
			if err != nil {
				return err
			}

			fmt.Fprintln(c.App.Writer, string(payload))
			return nil
		},
	}
}

// removeCommand strips the hidden chunk, rewrites the file in place, and
// prints the removed message.
func removeCommand() *cli.Command {
	return &cli.Command{
		Name:  "remove",
		Usage: "strip a hidden message from the image",
		Flags: []cli.Flag{
			fileFlag(),
			tokenFlag(),
		},
		Action: func(c *cli.Context) error {
			img, err := pngcrypt.Open(c.String("file"))
			if err != nil {
				return err
			}

			payload, err := img.Strip(c.String("token"))
			if err != nil {
				return err
			}

			if err := img.Save(pngcrypt.WithValidation()); err != nil {
				return err
			}

			fmt.Fprintln(c.App.Writer, string(payload))
			return nil
		},
	}
}

// printCommand lists every chunk in the image.
func printCommand() *cli.Command {
	return &cli.Command{
		Name:  "print",
		Usage: "list the image's chunks",
		Flags: []cli.Flag{
			fileFlag(),
		},
		Action: func(c *cli.Context) error {
			img, err := pngcrypt.Open(c.String("file"))
			if err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "%-6s %10s %10s  %s\n", "TYPE", "LENGTH", "CRC", "FLAGS")
			for _, chunk := range img.Chunks() {
				fmt.Fprintf(c.App.Writer, "%-6s %10d   %08x  %s\n",
					chunk.Type, chunk.Length(), chunk.CRC, chunkFlags(chunk.Type))
			}
			return nil
		},
	}
}

// chunkFlags renders the type-code property bits the way pngcheck does.
func chunkFlags(ct pngcrypt.ChunkType) string {
	flags := ""
	if ct.Critical() {
		flags += "critical"
	} else {
		flags += "ancillary"
	}
	if !ct.Public() {
		flags += ",private"
	}
	if ct.SafeToCopy() {
		flags += ",safe-to-copy"
	}
	return flags
}
