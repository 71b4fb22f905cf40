package importer

import (
	"context"
	"testing"

	"github.com/abhisek/wordiz/internal/words"
)

type memSink struct {
	got []words.Word
}

func (m *memSink) Upsert(_ context.Context, w *words.Word) error {
	m.got = append(m.got, *w)
	return nil
}

func TestImportValidList(t *testing.T) {
	raw := []byte(`[
		{"text": "hund", "translation": "dog", "definition": "a domestic canine", "phonetic": "hʊnt"},
		{"text": "katze", "translation": "cat", "audio_url": "katze.mp3"}
	]`)

	sink := &memSink{}
	rep, err := Import(context.Background(), sink, raw)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if rep.Total != 2 || rep.Imported != 2 {
		t.Errorf("report = %+v, want 2/2", rep)
	}
	if len(sink.got) != 2 {
		t.Fatalf("sink received %d words", len(sink.got))
	}
	if sink.got[0].Text != "hund" || sink.got[0].Phonetic != "hʊnt" {
		t.Errorf("first word = %+v", sink.got[0])
	}
	if sink.got[1].AudioURL != "katze.mp3" {
		t.Errorf("second word = %+v", sink.got[1])
	}
}

func TestImportRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"text": "hund"`},
		{"not an array", `{"text": "hund", "translation": "dog"}`},
		{"empty array", `[]`},
		{"missing translation", `[{"text": "hund"}]`},
		{"empty text", `[{"text": "", "translation": "dog"}]`},
		{"unknown field", `[{"text": "hund", "translation": "dog", "points": 5}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &memSink{}
			_, err := Import(context.Background(), sink, []byte(tt.raw))
			if err == nil {
				t.Fatal("expected error")
			}
			if len(sink.got) != 0 {
				t.Errorf("rejected file still imported %d words", len(sink.got))
			}
		})
	}
}
