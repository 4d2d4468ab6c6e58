package entities

import "testing"

func TestParseStructureMaterial(t *testing.T) {
	cases := map[string]StructureMaterial{
		"":         "",
		"Metálica": StructureMetal,
		" metal ":  StructureMetal,
		"METALON":  StructureMetal,
		"metalica": StructureMetal,
		"Madeira":  StructureWood,
		"wood":     StructureWood,
		"Sarrafo":  StructureWood,
		"Aço":      "aço",
	}
	for in, want := range cases {
		if got := ParseStructureMaterial(in); got != want {
			t.Fatalf("ParseStructureMaterial(%q): expected %q, got %q", in, want, got)
		}
	}

	for _, s := range []StructureMaterial{StructureMetal, StructureWood} {
		if got := ParseStructureMaterial(s.Label()); got != s {
			t.Fatalf("label %q does not parse back to %q, got %q", s.Label(), s, got)
		}
	}
}
