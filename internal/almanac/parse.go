package almanac

import (
	"errors"
	"strconv"
	"strings"

	"aoc2023/internal/common"
	"aoc2023/internal/diagnostic"
)

const mapHeaderSuffix = " map:"

// Almanac is a parsed puzzle input.
type Almanac struct {
	Seeds    Seeds
	Pipeline Pipeline
}

// block is a run of non-blank lines; first is the 1-based line number of
// lines[0].
type block struct {
	first int
	lines []string
}

// Parse parses the whole puzzle input. The first block is the seed header,
// every following block is one stage map.
func Parse(text string) (*Almanac, error) {
	blocks := splitBlocks(text)

	header, ok := common.First(blocks)
	if !ok {
		return nil, diagnostic.Malformed(0, "", "missing seed header")
	}

	seeds, err := parseSeeds(header)
	if err != nil {
		return nil, err
	}

	pipeline := make(Pipeline, 0, len(blocks)-1)
	for _, b := range blocks[1:] {
		st, err := parseStage(b)
		if err != nil {
			return nil, err
		}

		pipeline = append(pipeline, st)
	}

	return &Almanac{Seeds: seeds, Pipeline: pipeline}, nil
}

func splitBlocks(text string) []block {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var (
		blocks []block
		cur    *block
	)

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			cur = nil
			continue
		}

		if cur == nil {
			blocks = append(blocks, block{first: i + 1})
			cur = &blocks[len(blocks)-1]
		}

		cur.lines = append(cur.lines, line)
	}

	return blocks
}

func parseSeeds(b block) (Seeds, error) {
	_, list, found := strings.Cut(b.lines[0], ":")
	if !found {
		return nil, diagnostic.Malformed(b.first, b.lines[0], "missing ':' separator")
	}

	var seeds Seeds

	// The seed list may wrap onto continuation lines.
	rows := append([]string{list}, b.lines[1:]...)
	for i, row := range rows {
		values, err := parseRow(b.first+i, row)
		if err != nil {
			return nil, err
		}

		seeds = append(seeds, values...)
	}

	return seeds, nil
}

func parseStage(b block) (Stage, error) {
	name, found := strings.CutSuffix(b.lines[0], mapHeaderSuffix)
	if !found || name == "" {
		return Stage{}, diagnostic.Malformed(b.first, b.lines[0], "expected '<name> map:' header")
	}

	st := Stage{Name: name, Entries: make([]Entry, 0, len(b.lines)-1)}
	for i, row := range b.lines[1:] {
		line := b.first + 1 + i

		values, err := parseRow(line, row)
		if err != nil {
			return Stage{}, err
		}

		if len(values) != 3 {
			return Stage{}, diagnostic.Malformed(line, row, "expected 3 integers, got %d", len(values))
		}

		e, err := NewEntry(values[0], values[1], values[2])
		if err != nil {
			var de *diagnostic.Error
			if errors.As(err, &de) {
				de.Line, de.Token = line, row
			}

			return Stage{}, err
		}

		st.Entries = append(st.Entries, e)
	}

	return st, nil
}

func parseRow(line int, row string) ([]uint64, error) {
	values, bad, err := common.ParseUintFields[uint64](row)
	if err == nil {
		return values, nil
	}

	if errors.Is(err, strconv.ErrRange) {
		return nil, diagnostic.Overflow(line, bad, err)
	}

	return nil, &diagnostic.Error{
		Kind:    diagnostic.KindMalformed,
		Line:    line,
		Token:   bad,
		Message: "not an unsigned integer",
		Err:     err,
	}
}
