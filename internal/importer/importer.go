// Package importer loads word lists from JSON files into the dictionary.
// Files are validated against a schema before any row is written, so a bad
// file never leaves a half-imported dictionary behind.
package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/wordiz/internal/words"
)

// wordListSchema is the JSON Schema every import file must satisfy.
const wordListSchema = `{
	"type": "array",
	"minItems": 1,
	"items": {
		"type": "object",
		"required": ["text", "translation"],
		"properties": {
			"text": {"type": "string", "minLength": 1},
			"translation": {"type": "string", "minLength": 1},
			"definition": {"type": "string"},
			"phonetic": {"type": "string"},
			"part_of_speech": {"type": "string"},
			"audio_url": {"type": "string"},
			"image_url": {"type": "string"}
		},
		"additionalProperties": false
	}
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(wordListSchema)))
		if err != nil {
			compileErr = fmt.Errorf("parse word-list schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://word-list.json", doc); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://word-list.json")
	})
	return compiledSchema, compileErr
}

// entry mirrors one object of the import file.
type entry struct {
	Text         string `json:"text"`
	Translation  string `json:"translation"`
	Definition   string `json:"definition"`
	Phonetic     string `json:"phonetic"`
	PartOfSpeech string `json:"part_of_speech"`
	AudioURL     string `json:"audio_url"`
	ImageURL     string `json:"image_url"`
}

// Sink receives validated words. Satisfied by store.WordRepo.
type Sink interface {
	Upsert(ctx context.Context, w *words.Word) error
}

// Report summarizes one import run.
type Report struct {
	Total    int
	Imported int
}

// ImportFile reads, validates, and imports the word list at path.
func ImportFile(ctx context.Context, sink Sink, path string) (Report, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("read word list: %w", err)
	}
	return Import(ctx, sink, raw)
}

// Import validates raw JSON against the word-list schema and upserts every
// entry. Validation failure imports nothing.
func Import(ctx context.Context, sink Sink, raw []byte) (Report, error) {
	sch, err := schema()
	if err != nil {
		return Report{}, err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return Report{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return Report{}, fmt.Errorf("word list rejected: %w", err)
	}

	var entries []entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return Report{}, fmt.Errorf("decode word list: %w", err)
	}

	rep := Report{Total: len(entries)}
	for _, e := range entries {
		w := &words.Word{
			Text:         e.Text,
			Translation:  e.Translation,
			Definition:   e.Definition,
			Phonetic:     e.Phonetic,
			PartOfSpeech: e.PartOfSpeech,
			AudioURL:     e.AudioURL,
			ImageURL:     e.ImageURL,
		}
		if err := sink.Upsert(ctx, w); err != nil {
			return rep, fmt.Errorf("import %q: %w", e.Text, err)
		}
		rep.Imported++
	}
	return rep, nil
}
