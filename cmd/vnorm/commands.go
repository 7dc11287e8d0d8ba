package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/npillmayer/vietnamese"
)

var (
	Place = &cobra.Command{
		Use:   "place <word> <tone>",
		Short: "Put the tone mark (0..5 or its name) on a syllable.",
		Args:  cobra.ExactArgs(2),
		RunE:  commandPlace,
	}

	Decompose = &cobra.Command{
		Use:   "decompose <word>...",
		Short: "Split syllables into onset, nucleus and coda.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  commandDecompose,
	}

	stripArgs = struct {
		Mode string
	}{}

	Strip = &cobra.Command{
		Use:   "strip <text>...",
		Short: "Remove diacritics or encode them as numeric character references.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  commandStrip,
	}

	FixAccent = &cobra.Command{
		Use:   "fix-accent <text>...",
		Short: "Move misplaced tone marks to the right vowel.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  textCommand(vietnamese.FixAccent),
	}

	FixIY = &cobra.Command{
		Use:   "fix-iy <text>...",
		Short: "Rewrite i/y spelling variants to the prevalent spelling.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  textCommand(vietnamese.FixIY),
	}

	FormatName = &cobra.Command{
		Use:   "format-name <name>...",
		Short: "Write a name with one capital letter per part.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  textCommand(vietnamese.FormatName),
	}

	Check = &cobra.Command{
		Use:   "check <char>",
		Short: "Test whether a character belongs to the Vietnamese alphabet.",
		Args:  cobra.ExactArgs(1),
		RunE:  commandCheck,
	}

	scanArgs = struct {
		Correct bool
	}{}

	Scan = &cobra.Command{
		Use:   "scan <text>...",
		Short: "List the words of a text which are not in the dictionary.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  commandScan,
	}

	sortArgs = struct {
		People bool
	}{}

	Sort = &cobra.Command{
		Use:   "sort [word]...",
		Short: "Sort words (or lines of standard input) alphabetically.",
		RunE:  commandSort,
	}

	sortRecordsArgs = struct {
		Keys   []string
		People string
	}{}

	SortRecords = &cobra.Command{
		Use:   "sort-records [file]",
		Short: "Sort a YAML list of records by one or more fields.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  commandSortRecords,
	}

	Speak = &cobra.Command{
		Use:   "speak <text>...",
		Short: "Spell a text out syllable by syllable.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  textCommand(vietnamese.Speak),
	}

	Number = &cobra.Command{
		Use:   "number <amount>",
		Short: "Write an amount in words.",
		Args:  cobra.ExactArgs(1),
		RunE:  commandNumber,
	}

	generateArgs = struct {
		Strict bool
	}{}

	Generate = &cobra.Command{
		Use:   "generate",
		Short: "List every syllable of the phonological model.",
		Args:  cobra.NoArgs,
		RunE:  commandGenerate,
	}
)

func init() {
	Strip.Flags().StringVar(&stripArgs.Mode, "mode", vietnamese.Remove.String(), "remove, alphabet or ncr_decimal")
	Scan.Flags().BoolVar(&scanArgs.Correct, "correct", false, "list the words found in the dictionary instead")
	Sort.Flags().BoolVar(&sortArgs.People, "people", false, "sort as people's names, by given name first")
	SortRecords.Flags().StringSliceVar(&sortRecordsArgs.Keys, "key", nil, "field to sort by, may be repeated")
	SortRecords.Flags().StringVar(&sortRecordsArgs.People, "people", "", "field holding a person's name to sort by first")
	Generate.Flags().BoolVar(&generateArgs.Strict, "strict", false, "only combine rhymes with their known leading consonants")
}

// textCommand runs f on the arguments joined by spaces.
func textCommand(f func(string) string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), f(strings.Join(args, " ")))
		return err
	}
}

func parseTone(s string) (vietnamese.Tone, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return vietnamese.Tone(n), nil
	}
	for t := vietnamese.Flat; t <= vietnamese.DotBelow; t++ {
		if t.String() == s {
			return t, nil
		}
	}
	return vietnamese.Flat, fmt.Errorf("unknown tone %q", s)
}

func commandPlace(cmd *cobra.Command, args []string) error {
	tone, err := parseTone(cmd.Flags().Arg(1))
	if err != nil {
		return err
	}
	word, err := vietnamese.PlaceAccentStrict(cmd.Flags().Arg(0), tone)
	if err != nil {
		return fmt.Errorf("place: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), word)
	return nil
}

func commandDecompose(cmd *cobra.Command, args []string) error {
	for _, word := range args {
		s, err := vietnamese.Decompose(word)
		if err != nil {
			return fmt.Errorf("decompose: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s|%s|%s\t%s\tpermitted=%v\n",
			word, s.Onset, s.Nucleus, s.Coda, s.Tone, s.Permitted())
	}
	return nil
}

func commandStrip(cmd *cobra.Command, args []string) error {
	mode, err := vietnamese.ParseAccentMode(stripArgs.Mode)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), vietnamese.RemoveAccent(strings.Join(args, " "), mode))
	return nil
}

func commandCheck(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), vietnamese.CheckChar(cmd.Flags().Arg(0)))
	return nil
}

func commandScan(cmd *cobra.Command, args []string) error {
	for _, w := range vietnamese.ScanWords(strings.Join(args, " "), !scanArgs.Correct) {
		fmt.Fprintln(cmd.OutOrStdout(), w)
	}
	return nil
}

func commandSort(cmd *cobra.Command, args []string) error {
	items := args
	if len(items) == 0 {
		var err error
		if items, err = readLines(cmd.InOrStdin()); err != nil {
			return fmt.Errorf("sort: %w", err)
		}
	}
	if sortArgs.People {
		items = vietnamese.SortPeopleNames(items)
	} else {
		items = vietnamese.SortWords(items)
	}
	for _, item := range items {
		fmt.Fprintln(cmd.OutOrStdout(), item)
	}
	return nil
}

func commandSortRecords(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("sort-records: %w", err)
		}
		defer f.Close()
		in = f
	}
	var records []vietnamese.Record
	if err := yaml.NewDecoder(in).Decode(&records); err != nil && err != io.EOF {
		return fmt.Errorf("sort-records: decoding records: %w", err)
	}
	if sortRecordsArgs.People != "" {
		records = vietnamese.SortPeopleRecords(records, sortRecordsArgs.People, sortRecordsArgs.Keys...)
	} else {
		records = vietnamese.SortRecords(records, sortRecordsArgs.Keys...)
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	defer enc.Close()
	return enc.Encode(records)
}

func commandNumber(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(cmd.Flags().Arg(0), 64)
	if err != nil {
		return fmt.Errorf("number: %w", err)
	}
	text := vietnamese.NumberToText(amount)
	if text == "" {
		return fmt.Errorf("number: %s is out of range", cmd.Flags().Arg(0))
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

func commandGenerate(cmd *cobra.Command, args []string) error {
	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, word := range vietnamese.GenerateWords(generateArgs.Strict) {
		w.WriteString(word)
		w.WriteByte('\n')
	}
	return w.Flush()
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
