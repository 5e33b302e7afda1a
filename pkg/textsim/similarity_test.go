package textsim

import (
	"math"
	"testing"
)

func TestSimilarityContract(t *testing.T) {
	e := New()

	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical text", a: "transformer text classification", b: "transformer text classification", want: 1.0},
		{name: "identical after case folding and punctuation", a: "Transformer, Text: Classification!", b: "transformer text classification", want: 1.0},
		{name: "empty left", a: "", b: "anything", want: 0.0},
		{name: "empty right", a: "anything", b: "", want: 0.0},
		{name: "both empty", a: "", b: "", want: 0.0},
		{name: "punctuation only", a: "!!! ...", b: "anything", want: 0.0},
		{name: "no overlap", a: "diffusion image generation", b: "transformer text classification", want: 0.0},
		{name: "partial overlap", a: "transformer for text classification", b: "transformer text classification", want: 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Similarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if sym := e.Similarity(tt.b, tt.a); sym != got {
				t.Errorf("Similarity not symmetric: %v vs %v", got, sym)
			}
		})
	}
}

func TestCJKBigramTokenization(t *testing.T) {
	description := "使用Transformer模型进行文本分类任务"
	query := "Transformer文本分类"

	bigram := New()
	if sim := bigram.Similarity(query, description); sim <= 0 {
		t.Errorf("bigram Similarity = %v, want > 0 on boundary-less script text", sim)
	}

	whitespace := NewWithTokenizer(WhitespaceTokenize)
	if sim := whitespace.Similarity(query, description); sim != 0 {
		t.Errorf("whitespace Similarity = %v, want 0: whole-run tokens cannot overlap", sim)
	}
}

func TestTokenizeMixedScript(t *testing.T) {
	tokens := Tokenize("使用Transformer模型")

	for _, want := range []string{"transformer", "使用", "模型"} {
		if _, ok := tokens[want]; !ok {
			t.Errorf("Tokenize missing token %q, got %v", want, tokens)
		}
	}
	if _, ok := tokens["使用transformer模型"]; ok {
		t.Error("Tokenize must split script runs, not emit the raw string")
	}
}

func TestTokenizeSingleCJKCharacter(t *testing.T) {
	tokens := Tokenize("树")
	if _, ok := tokens["树"]; !ok || len(tokens) != 1 {
		t.Errorf("Tokenize single character = %v, want the character itself", tokens)
	}
}
