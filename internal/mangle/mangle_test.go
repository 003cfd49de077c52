package mangle

import "testing"

func TestIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"reserved word quoted", "type", "`type`"},
		{"reserved soft keyword quoted", "wait", "`wait`"},
		{"plain name unchanged", "name", "name"},
		{"single leading underscore bare", "_nickname", "_nickname"},
		{"double leading underscore quoted", "__typename", "`__typename`"},
		{"trailing underscore quoted", "_name_", "`_name_`"},
		{"bare underscore quoted", "_", "`_`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Identifier(tt.in); got != tt.want {
				t.Errorf("Identifier(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDefSite(t *testing.T) {
	t.Parallel()

	if got := DefSite("_name_"); got != "`_name_` " {
		t.Errorf("DefSite(_name_) = %q, want %q", got, "`_name_` ")
	}

	if got := DefSite("name"); got != "name" {
		t.Errorf("DefSite(name) = %q, want %q", got, "name")
	}
}

func TestRecordField(t *testing.T) {
	t.Parallel()

	if got := RecordField("wait"); got != "wait$" {
		t.Errorf("RecordField(wait) = %q, want %q", got, "wait$")
	}

	if got := RecordField("name"); got != "name" {
		t.Errorf("RecordField(name) = %q, want %q", got, "name")
	}
}

func TestResolveCollisions(t *testing.T) {
	t.Parallel()

	got := ResolveCollisions([]string{"NEWHOPE", "EMPIRE", "JEDI", "jedi"})
	want := []string{"NEWHOPE", "EMPIRE", "JEDI", "jedi_1"}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ResolveCollisions()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestResolveCollisions_NoDuplicates(t *testing.T) {
	t.Parallel()

	in := []string{"Character", "Droid", "Human"}
	got := ResolveCollisions(in)
	for i := range in {
		if got[i] != in[i] {
			t.Errorf("ResolveCollisions()[%d] = %q, want unchanged %q", i, got[i], in[i])
		}
	}
}

func TestResolveCollisions_TripleFold(t *testing.T) {
	t.Parallel()

	got := ResolveCollisions([]string{"Foo", "foo", "FOO"})
	want := []string{"Foo", "foo_1", "FOO_2"}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ResolveCollisions()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
