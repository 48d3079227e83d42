package ini

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// flat is a span-free view of an item for comparison in tests.
type flat struct {
	Kind  itemKind
	Key   string
	Value string
	Pad   [4]string
}

func scanAll(t *testing.T, src string) ([]item, []flat) {
	t.Helper()
	sc := &scanner{src: src}
	var items []item
	var flats []flat
	for {
		it, ok := sc.next()
		if !ok {
			return items, flats
		}
		f := flat{
			Kind:  it.kind,
			Key:   it.key.resolve(src),
			Value: it.value.resolve(src),
		}
		for i, p := range it.pad {
			f.Pad[i] = p.resolve(src)
		}
		items = append(items, it)
		flats = append(flats, f)
	}
}

func renderAll(items []item, src string) string {
	var sb strings.Builder
	for i := range items {
		items[i].render(&sb, src)
	}
	return sb.String()
}

func prop(key, value string, pad [4]string) flat {
	return flat{Kind: itemProperty, Key: key, Value: value, Pad: pad}
}

func TestScanClassifiesItems(t *testing.T) {
	src := ";Hello\n" +
		"[World]\n" +
		"Name=The Machine\n" +
		"Author=Nifflas\n" +
		"\n" +
		"[x1000y1000]\n" +
		"ShiftVisible(A)=False\n" +
		"ShiftEffect(A)=False\n" +
		"ShiftSound(A)=None"
	items, flats := scanAll(t, src)

	nl := [4]string{"", "\n", "", ""}
	want := []flat{
		{Kind: itemComment, Key: "Hello", Pad: nl},
		{Kind: itemSection, Key: "World", Pad: nl},
		prop("Name", "The Machine", [4]string{"", "", "", "\n"}),
		prop("Author", "Nifflas", [4]string{"", "", "", "\n"}),
		{Kind: itemBlank, Key: "\n"},
		{Kind: itemSection, Key: "x1000y1000", Pad: nl},
		prop("ShiftVisible(A)", "False", [4]string{"", "", "", "\n"}),
		prop("ShiftEffect(A)", "False", [4]string{"", "", "", "\n"}),
		prop("ShiftSound(A)", "None", [4]string{"", "", "", ""}),
	}
	if diff := cmp.Diff(want, flats); diff != "" {
		t.Errorf("scan mismatch (-want +got):\n%s", diff)
	}
	if got := renderAll(items, src); got != src {
		t.Errorf("render mismatch:\ngot  %q\nwant %q", got, src)
	}
}

func TestScanKeepsMalformedLines(t *testing.T) {
	src := "[World] invalid\n" +
		"Name\n" +
		"\n" +
		"[x1000y1000\n" +
		"=False"
	items, flats := scanAll(t, src)

	want := []flat{
		{Kind: itemError, Key: "[World] invalid\n"},
		{Kind: itemError, Key: "Name\n"},
		{Kind: itemBlank, Key: "\n"},
		{Kind: itemError, Key: "[x1000y1000\n"},
		prop("", "False", [4]string{"", "", "", ""}),
	}
	if diff := cmp.Diff(want, flats); diff != "" {
		t.Errorf("scan mismatch (-want +got):\n%s", diff)
	}
	if got := renderAll(items, src); got != src {
		t.Errorf("render mismatch:\ngot  %q\nwant %q", got, src)
	}
}

func TestScanSplitsPadding(t *testing.T) {
	src := "  ;  Hello  \n" +
		"  [World]\n" +
		"  Name=The Machine\n" +
		"Author  =Nifflas\n" +
		"     \n" +
		"[x1000y1000]  \n" +
		"ShiftVisible(A)=  False\n" +
		"ShiftEffect(A)=False  \n" +
		"  ShiftSound(A)  =  None  "
	items, flats := scanAll(t, src)

	want := []flat{
		{Kind: itemComment, Key: "  Hello", Pad: [4]string{"  ", "  \n", "", ""}},
		{Kind: itemSection, Key: "World", Pad: [4]string{"  ", "\n", "", ""}},
		prop("Name", "The Machine", [4]string{"  ", "", "", "\n"}),
		prop("Author", "Nifflas", [4]string{"", "  ", "", "\n"}),
		{Kind: itemBlank, Key: "     \n"},
		{Kind: itemSection, Key: "x1000y1000", Pad: [4]string{"", "  \n", "", ""}},
		prop("ShiftVisible(A)", "False", [4]string{"", "", "  ", "\n"}),
		prop("ShiftEffect(A)", "False", [4]string{"", "", "", "  \n"}),
		prop("ShiftSound(A)", "None", [4]string{"  ", "  ", "  ", "  "}),
	}
	if diff := cmp.Diff(want, flats); diff != "" {
		t.Errorf("scan mismatch (-want +got):\n%s", diff)
	}
	if got := renderAll(items, src); got != src {
		t.Errorf("render mismatch:\ngot  %q\nwant %q", got, src)
	}
}

func TestScanMixedTerminators(t *testing.T) {
	src := ";Hello\r" +
		"[World]\n" +
		"Name=The Machine\r\n" +
		"Author=Nifflas\r     \n" +
		"[x1000y1000]\r\n" +
		"ShiftVisible(A)=False\r" +
		"ShiftEffect(A)=False\n" +
		"ShiftSound(A)=None\r\n"
	items, flats := scanAll(t, src)

	want := []flat{
		{Kind: itemComment, Key: "Hello", Pad: [4]string{"", "\r", "", ""}},
		{Kind: itemSection, Key: "World", Pad: [4]string{"", "\n", "", ""}},
		prop("Name", "The Machine", [4]string{"", "", "", "\r\n"}),
		prop("Author", "Nifflas", [4]string{"", "", "", "\r"}),
		{Kind: itemBlank, Key: "     \n"},
		{Kind: itemSection, Key: "x1000y1000", Pad: [4]string{"", "\r\n", "", ""}},
		prop("ShiftVisible(A)", "False", [4]string{"", "", "", "\r"}),
		prop("ShiftEffect(A)", "False", [4]string{"", "", "", "\n"}),
		prop("ShiftSound(A)", "None", [4]string{"", "", "", "\r\n"}),
	}
	if diff := cmp.Diff(want, flats); diff != "" {
		t.Errorf("scan mismatch (-want +got):\n%s", diff)
	}
	if got := renderAll(items, src); got != src {
		t.Errorf("render mismatch:\ngot  %q\nwant %q", got, src)
	}
}

func TestScanBracketEdgeCases(t *testing.T) {
	tests := []struct {
		in   string
		kind itemKind
		key  string
	}{
		{"[S]", itemSection, "S"},
		{"[]", itemError, "[]"},
		{"[", itemError, "["},
		{"[x", itemError, "[x"},
		{"[a=b]", itemSection, "a=b"},
		{"  [ spaced ]  ", itemSection, " spaced "},
	}
	for _, test := range tests {
		_, flats := scanAll(t, test.in)
		if len(flats) != 1 {
			t.Errorf("scan(%q) produced %d items, want 1", test.in, len(flats))
			continue
		}
		got := flats[0]
		if got.Kind != test.kind || got.Key != test.key {
			t.Errorf("scan(%q) = kind %d key %q, want kind %d key %q",
				test.in, got.Kind, got.Key, test.kind, test.key)
		}
	}
}
