// Command scriptlyx converts text between Latin and Cyrillic scripts.
//
// Usage:
//
//	scriptlyx -conversion uzbek-latin-to-cyrillic salom dunyo
//	echo "привет" | scriptlyx -conversion generic-cyrillic-to-latin
//	scriptlyx -auto -alphabet uzbek "salom"
//
// With -auto the conversion direction is picked from the dominant script of
// the input; mixed or unrecognizable input is an error.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"golang.org/x/text/unicode/norm"

	"github.com/abdulaziz-sultonmurodov/ScriptlyX/convert"
	"github.com/abdulaziz-sultonmurodov/ScriptlyX/detect"
	"github.com/abdulaziz-sultonmurodov/ScriptlyX/translit"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "scriptlyx: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := ff.NewFlagSet("scriptlyx")
	var (
		conversion = fs.StringLong("conversion", "", "conversion id (see -list)")
		auto       = fs.BoolLong("auto", "pick direction from the input's dominant script")
		alphabet   = fs.StringLong("alphabet", translit.AlphabetUzbek, "alphabet for -auto: generic or uzbek")
		list       = fs.BoolLong("list", "print the available conversion ids and exit")
	)
	if err := ff.Parse(fs, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	if *list {
		for _, c := range convert.Converters() {
			fmt.Println(c.ID)
		}
		return nil
	}

	text, err := readInput(fs.GetArgs())
	if err != nil {
		return err
	}
	text = norm.NFC.String(text)

	id, err := pickConversion(*conversion, *auto, *alphabet, text)
	if err != nil {
		return err
	}

	out, err := convert.Convert(text, id)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// readInput joins the positional args, or reads stdin when there are none.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func pickConversion(conversion string, auto bool, alphabet, text string) (convert.ID, error) {
	if conversion != "" {
		id, ok := convert.ParseID(conversion)
		if !ok {
			return convert.Unknown, fmt.Errorf("unknown conversion %q (try -list)", conversion)
		}
		return id, nil
	}
	if !auto {
		return convert.Unknown, fmt.Errorf("either -conversion or -auto is required")
	}

	suggestion := detect.Suggest(text)
	switch {
	case alphabet == translit.AlphabetGeneric && suggestion == detect.SuggestToCyrillic:
		return convert.GenericLatinToCyrillic, nil
	case alphabet == translit.AlphabetGeneric && suggestion == detect.SuggestToLatin:
		return convert.GenericCyrillicToLatin, nil
	case alphabet == translit.AlphabetUzbek && suggestion == detect.SuggestToCyrillic:
		return convert.UzbekLatinToCyrillic, nil
	case alphabet == translit.AlphabetUzbek && suggestion == detect.SuggestToLatin:
		return convert.UzbekCyrillicToLatin, nil
	case suggestion == detect.SuggestNone:
		return convert.Unknown, fmt.Errorf("cannot detect a dominant script, pass -conversion explicitly")
	default:
		return convert.Unknown, fmt.Errorf("unknown alphabet %q (supported: %v)", alphabet, translit.Alphabets())
	}
}
