package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/wordsearch/grid"
	"github.com/katalvlaran/wordsearch/puzzle"
)

// Document is the exported puzzle file model. Grid rows are strings, one
// per row; solution rows mark non-word cells with '.'.
type Document struct {
	ID        string      `json:"id"`
	Size      int         `json:"size"`
	Display   []string    `json:"display"`
	Solution  []string    `json:"solution"`
	Words     []Placement `json:"words"`
	Failed    []string    `json:"failed,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// Placement mirrors a placed-word record in export form.
type Placement struct {
	Word   string `json:"word"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	DRow   int    `json:"drow"`
	DCol   int    `json:"dcol"`
	Length int    `json:"length"`
}

// newDocument flattens a Result into the export model with a fresh ID.
func newDocument(res puzzle.Result) Document {
	doc := Document{
		ID:        uuid.NewString(),
		Size:      res.DisplayGrid.Size(),
		Display:   gridRows(res.DisplayGrid),
		Solution:  gridRows(res.SolutionGrid),
		Failed:    res.Failed,
		CreatedAt: time.Now().UTC(),
	}
	for _, p := range res.Placed {
		doc.Words = append(doc.Words, Placement{
			Word:   p.Word,
			Row:    p.Row,
			Col:    p.Col,
			DRow:   p.Dir.DR,
			DCol:   p.Dir.DC,
			Length: p.Length,
		})
	}
	return doc
}

// gridRows renders each grid row as a string, empty cells as '.'.
func gridRows(g *grid.Grid) []string {
	n := g.Size()
	rows := make([]string, n)
	buf := make([]byte, n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			v, _ := g.Get(row, col)
			if v == grid.Empty {
				v = '.'
			}
			buf[col] = v
		}
		rows[row] = string(buf)
	}
	return rows
}

// exportJSON writes the puzzle document to path, indented for humans.
func exportJSON(path string, res puzzle.Result) error {
	data, err := json.MarshalIndent(newDocument(res), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
