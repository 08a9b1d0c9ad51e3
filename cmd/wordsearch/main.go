// Command wordsearch generates a word-search puzzle from a word list and
// prints it, optionally exporting a JSON document or opening the
// interactive terminal viewer.
//
// Examples:
//
//	wordsearch --size 12 CAT DOG BIRD
//	wordsearch --file words.txt --size 15 --reverse --seed 7
//	wordsearch --size 10 -o puzzle.json GOPHER PUZZLE
//	wordsearch --size 10 --view GOPHER PUZZLE
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordsearch/direction"
	"github.com/katalvlaran/wordsearch/puzzle"
	"github.com/katalvlaran/wordsearch/termview"
)

var (
	wordsFile  string
	size       int
	seed       int64
	horizontal bool
	vertical   bool
	diagonal   bool
	reverse    bool
	outputFile string
	view       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wordsearch [words...]",
		Short: "Generate word-search puzzles",
		Long: `Generate a word-search puzzle from the given words.

Words come from arguments, --file, or both. They are uppercased and
deduplicated; a word that cannot be placed is reported, not fatal.`,
		RunE: runGenerate,
	}

	rootCmd.Flags().StringVarP(&wordsFile, "file", "f", "", "File with one word per line")
	rootCmd.Flags().IntVarP(&size, "size", "s", 15, "Grid side length")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 = fixed default, reproducible)")
	rootCmd.Flags().BoolVar(&horizontal, "horizontal", true, "Allow horizontal placement")
	rootCmd.Flags().BoolVar(&vertical, "vertical", true, "Allow vertical placement")
	rootCmd.Flags().BoolVar(&diagonal, "diagonal", true, "Allow diagonal placement")
	rootCmd.Flags().BoolVar(&reverse, "reverse", false, "Also allow reversed orientations")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Export the puzzle as JSON to this file")
	rootCmd.Flags().BoolVar(&view, "view", false, "Open the interactive terminal viewer")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	raw := args
	if wordsFile != "" {
		fromFile, err := readWordsFile(wordsFile)
		if err != nil {
			return err
		}
		raw = append(raw, fromFile...)
	}
	words, rejected := normalize(raw)
	if len(rejected) > 0 {
		fmt.Fprintf(os.Stderr, "ignoring non-alphabetic entries: %s\n", strings.Join(rejected, ", "))
	}
	if len(words) == 0 {
		return fmt.Errorf("no usable words: pass words as arguments or via --file")
	}

	res, err := puzzle.Generate(words, puzzle.Options{
		Size: size,
		Directions: direction.Config{
			Horizontal: horizontal,
			Vertical:   vertical,
			Diagonal:   diagonal,
			Reverse:    reverse,
		},
		Seed: seed,
	})
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	fmt.Printf("Puzzle (%d×%d, %d/%d words, %d attempt(s)):\n\n", size, size,
		len(res.Placed), len(words), res.Attempts)
	fmt.Println(res.DisplayGrid)
	fmt.Println("Solution:")
	fmt.Println(res.SolutionGrid)
	if len(res.Failed) > 0 {
		fmt.Fprintf(os.Stderr, "could not place: %s\n", strings.Join(res.Failed, ", "))
	}

	if outputFile != "" {
		if err := exportJSON(outputFile, res); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		fmt.Printf("Exported to %s\n", outputFile)
	}

	if view {
		viewer, err := termview.New(res)
		if err != nil {
			return fmt.Errorf("viewer failed: %w", err)
		}
		return viewer.Run()
	}
	return nil
}

// readWordsFile reads one word per line, blank lines skipped.
func readWordsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			words = append(words, line)
		}
	}
	return words, sc.Err()
}
