package evaluate

import "testing"

func TestEvaluate_CaseAndWhitespaceInsensitive(t *testing.T) {
	res := Evaluate(" Hund ", "hund")
	if !res.IsCorrect {
		t.Error("expected ' Hund ' to match 'hund'")
	}
	if res.Accuracy != 100 {
		t.Errorf("Accuracy = %d, want 100", res.Accuracy)
	}
	if len(res.Mistakes) != 0 {
		t.Errorf("Mistakes = %v, want empty", res.Mistakes)
	}
}

func TestEvaluate_SingleMistakePosition(t *testing.T) {
	res := Evaluate("hand", "hund")
	if res.IsCorrect {
		t.Error("expected 'hand' to not match 'hund'")
	}
	if len(res.Mistakes) != 1 {
		t.Fatalf("Mistakes length = %d, want 1", len(res.Mistakes))
	}
	m := res.Mistakes[0]
	if m.Position != 1 || m.Expected != "u" || m.Actual != "a" {
		t.Errorf("Mistake = %+v, want {1 u a}", m)
	}
	if res.Accuracy != 75 {
		t.Errorf("Accuracy = %d, want 75", res.Accuracy)
	}
	if !res.PartialCredit {
		t.Error("expected partial credit at 75% accuracy")
	}
}

func TestEvaluate_LengthMismatch(t *testing.T) {
	res := Evaluate("hun", "hund")
	if len(res.Mistakes) != 1 {
		t.Fatalf("Mistakes length = %d, want 1", len(res.Mistakes))
	}
	m := res.Mistakes[0]
	if m.Position != 3 || m.Expected != "d" || m.Actual != "" {
		t.Errorf("Mistake = %+v, want {3 d \"\"}", m)
	}

	res = Evaluate("hunden", "hund")
	if len(res.Mistakes) != 2 {
		t.Fatalf("Mistakes length = %d, want 2", len(res.Mistakes))
	}
	for _, m := range res.Mistakes {
		if m.Expected != "" {
			t.Errorf("Mistake %+v: expected side should be empty past target end", m)
		}
	}
}

func TestEvaluate_TotallyWrong(t *testing.T) {
	res := Evaluate("xyz", "hund")
	if res.PartialCredit {
		t.Error("expected no partial credit for an unrelated answer")
	}
	if res.Accuracy != 0 {
		t.Errorf("Accuracy = %d, want 0", res.Accuracy)
	}
}

func TestEvaluate_EmptyInput(t *testing.T) {
	res := Evaluate("", "hund")
	if res.IsCorrect {
		t.Error("empty input must not be correct")
	}
	if len(res.Mistakes) != 4 {
		t.Errorf("Mistakes length = %d, want 4", len(res.Mistakes))
	}
}

func TestSkipped_FixedShape(t *testing.T) {
	res := Skipped("hund")
	if res.IsCorrect {
		t.Error("skip must not be correct")
	}
	if res.Points != SkipPoints {
		t.Errorf("Points = %d, want %d", res.Points, SkipPoints)
	}
	if res.Accuracy != 0 {
		t.Errorf("Accuracy = %d, want 0", res.Accuracy)
	}
	if res.Feedback != "Skipped" {
		t.Errorf("Feedback = %q, want Skipped", res.Feedback)
	}
	if len(res.Mistakes) != 0 {
		t.Errorf("Mistakes = %v, want empty", res.Mistakes)
	}
	if !res.Skipped {
		t.Error("expected Skipped flag")
	}
}

func TestSelfReport(t *testing.T) {
	res := SelfReport("hund", true)
	if !res.IsCorrect || !res.SelfReported {
		t.Errorf("SelfReport(true) = %+v, want correct + self-reported", res)
	}
	res = SelfReport("hund", false)
	if res.IsCorrect {
		t.Error("SelfReport(false) must not be correct")
	}
}

func TestEvaluate_Unicode(t *testing.T) {
	res := Evaluate("grün", "grün")
	if !res.IsCorrect {
		t.Error("expected rune-wise match for umlauts")
	}
	res = Evaluate("grun", "grün")
	if len(res.Mistakes) != 1 || res.Mistakes[0].Position != 2 {
		t.Errorf("Mistakes = %v, want single entry at rune position 2", res.Mistakes)
	}
}
