package elem

import "testing"

func TestComposeAxisOrder(t *testing.T) {
	tests := []struct {
		name  string
		slots TokenSlots
		want  string
	}{
		{"size block raw", TokenSlots{Size: "lg", Block: "block", Raw: "pill"}, "lg block pill"},
		{"all axes", TokenSlots{Size: "sm", Block: "block", Variant: "outline", Color: "red", Raw: "pill"}, "sm block outline red pill"},
		{"size only", TokenSlots{Size: "md"}, "md"},
		{"raw only", TokenSlots{Raw: "pill rounded"}, "pill rounded"},
		{"raw with extra whitespace", TokenSlots{Size: "sm", Raw: "  pill   rounded "}, "sm pill rounded"},
		{"duplicate across axes preserved", TokenSlots{Size: "lg", Raw: "lg"}, "lg lg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.slots.Compose()
			if !ok {
				t.Fatal("Compose() reported no contribution")
			}
			if got != tt.want {
				t.Errorf("Compose() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComposeEmpty(t *testing.T) {
	got, ok := TokenSlots{}.Compose()
	if ok {
		t.Errorf("empty slots should report no contribution, got %q", got)
	}
	if got != "" {
		t.Errorf("empty slots should yield empty string, got %q", got)
	}

	// Whitespace-only slots contribute nothing either.
	got, ok = TokenSlots{Raw: "   "}.Compose()
	if ok {
		t.Errorf("whitespace-only raw slot should report no contribution, got %q", got)
	}
}

func TestComposeDeterministic(t *testing.T) {
	slots := TokenSlots{Size: "lg", Variant: "outline", Raw: "pill rounded"}

	first, _ := slots.Compose()
	second, _ := slots.Compose()
	if first != second {
		t.Errorf("Compose() not deterministic: %q vs %q", first, second)
	}
}

func TestComposeNoStraySpaces(t *testing.T) {
	slots := TokenSlots{Block: "block", Raw: " pill "}

	got, _ := slots.Compose()
	if got != "block pill" {
		t.Errorf("Compose() = %q, want %q", got, "block pill")
	}
}
