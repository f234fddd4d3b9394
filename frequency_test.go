package huffman

import (
	"math"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

func TestComputeFrequencies(t *testing.T) {
	type testRow struct {
		name   string
		input  string
		expect []FrequencyEntry
	}

	testData := [...]testRow{
		{name: "empty", input: "", expect: []FrequencyEntry{}},
		{name: "single", input: "aaaa", expect: []FrequencyEntry{{'a', 4}}},
		{name: "mixed", input: "aabbbcc", expect: []FrequencyEntry{{'a', 2}, {'b', 3}, {'c', 2}}},
		{name: "first-occurrence", input: "zzyxz", expect: []FrequencyEntry{{'z', 3}, {'y', 1}, {'x', 1}}},
		{name: "binary", input: "\x00\xff\x00", expect: []FrequencyEntry{{0x00, 2}, {0xff, 1}}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			ft := ComputeFrequencies([]byte(row.input))
			actual := ft.Entries()
			if diff := pretty.Diff(row.expect, actual); len(diff) != 0 {
				t.Errorf("wrong entries:\n\t%s", strings.Join(diff, "\n\t"))
			}
			if ft.Len() != len(row.expect) {
				t.Errorf("expected Len %d, got %d", len(row.expect), ft.Len())
			}
			if ft.Total() != uint64(len(row.input)) {
				t.Errorf("expected Total %d, got %d", len(row.input), ft.Total())
			}
		})
	}
}

func TestFrequencyTable_Count(t *testing.T) {
	ft := ComputeFrequencies([]byte("aabbbcc"))
	for _, c := range "abcd" {
		expect := uint64(strings.Count("aabbbcc", string(c)))
		if actual := ft.Count(Symbol(c)); actual != expect {
			t.Errorf("Count(%q): expected %d, got %d", c, expect, actual)
		}
	}
}

func TestFrequencyTable_Dump(t *testing.T) {
	ft := ComputeFrequencies([]byte("aabbbcc"))

	expectDump := strings.Join([]string{
		"FrequencyTable{\n",
		"\tTotal() = 7\n",
		"\tCount('a') = 2\n",
		"\tCount('b') = 3\n",
		"\tCount('c') = 2\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = ft.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestMakeFrequencyTable(t *testing.T) {
	ft, err := MakeFrequencyTable([]FrequencyEntry{{'x', 3}, {'y', 0}, {'z', 1}})
	if err != nil {
		t.Fatalf("MakeFrequencyTable failed: %v", err)
	}
	expect := []FrequencyEntry{{'x', 3}, {'z', 1}}
	if diff := pretty.Diff(expect, ft.Entries()); len(diff) != 0 {
		t.Errorf("wrong entries:\n\t%s", strings.Join(diff, "\n\t"))
	}
	if ft.Total() != 4 {
		t.Errorf("expected Total 4, got %d", ft.Total())
	}

	_, err = MakeFrequencyTable([]FrequencyEntry{{'x', 3}, {'x', 1}})
	if err == nil {
		t.Errorf("expected error for duplicate symbol")
	}
}

func TestMakeFrequencyTable_Overflow(t *testing.T) {
	ft, err := MakeFrequencyTable([]FrequencyEntry{{'a', math.MaxUint64}, {'b', 2}})
	if err == nil {
		t.Fatalf("expected overflow error, got table with Total %d", ft.Total())
	}
	expectMsg := "huffman: frequency total overflows uint64 at symbol 'b'"
	if err.Error() != expectMsg {
		t.Errorf("wrong message:\n\texpect: %s\n\tactual: %s", expectMsg, err.Error())
	}

	ft, err = MakeFrequencyTable([]FrequencyEntry{{'a', math.MaxUint64 - 2}, {'b', 2}})
	if err != nil {
		t.Fatalf("MakeFrequencyTable failed: %v", err)
	}
	tree, err := BuildTree(ft)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if ft.Total() != uint64(math.MaxUint64) || tree.Weight() != ft.Total() {
		t.Errorf("expected Total and Weight %d, got %d and %d", uint64(math.MaxUint64), ft.Total(), tree.Weight())
	}
}
