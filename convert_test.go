package krutidev

import (
	"reflect"
	"strings"
	"sync"
	"testing"
)

func TestConvertGolden(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{"fixture", "¤ÉÉiÉ", "बाापा"},
		{"demo line", "¤ÉÉiÉ +ÉÉè® BÉDªÉÉ cÉä ", "बाापा +ााुर ठाक्याा बाक्त "},
		{"marker before consonant", "fd", "कि"},
		{"kitaab", "fdrkc", "किताब"},
		{"sentence", "fdrkc i<+us\nfy[kuk\n", "किताब पढ़नी\nलिखना\n"},
		{"vowel ladder", "vks vkS vk v", "ओ औ आ अ"},
		{"conjunct beats parts", "Dk", "क"},
		{"chau ligature", "pkS", "चौ"},
		{"nukta ladder", "[+k [+ [k", "ख़ ख़् ख"},
		{"digits", "0123456789", "०१२३४५६७८९"},
		{"danda", "**", "।।"},
		{"double marker", "ffd", "fिक"},
		{"marker before conjunct", "f{k", "कि्ष"},
		{"marker inside multi rule", "f=k", "त्रि"},
		{"marker before newline", "f\nd", "\nिक"},
		{"empty", "", ""},
		{"spaces", "   ", "   "},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := Convert(c.in)
			if res.Text != c.out {
				t.Errorf("Convert(%q) should be %q, is %q", c.in, c.out, res.Text)
			}
			if !res.Clean() {
				t.Errorf("Convert(%q) should be clean, has residuals %v", c.in, res.Residuals)
			}
		})
	}
}

func TestConvertResiduals(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
		want []Residual
	}{
		{"trailing marker", "f", "f",
			[]Residual{{Rune: 'f', Count: 1, First: 0}}},
		{"unmapped greek letter", "dΩs", "कΩी",
			[]Residual{{Rune: 'Ω', Count: 1, First: 1}}},
		{"unmapped legacy unit", "Ù", "Ù",
			[]Residual{{Rune: 'Ù', Count: 1, First: 0}}},
		{"repeated unmapped unit", "ÙdÙ", "ÙकÙ",
			[]Residual{{Rune: 'Ù', Count: 2, First: 0}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := Convert(c.in)
			if res.Text != c.out {
				t.Errorf("Convert(%q) should be %q, is %q", c.in, c.out, res.Text)
			}
			if !reflect.DeepEqual(res.Residuals, c.want) {
				t.Errorf("Convert(%q) residuals should be %v, are %v", c.in, c.want, res.Residuals)
			}
		})
	}
}

// Converted output contains no table keys (TestBuiltinKeysAbsentFromValues),
// so converting it again must change nothing.
func TestConvertIdempotentOnOutput(t *testing.T) {
	inputs := []string{
		"¤ÉÉiÉ",
		"fdrkc i<+us\nfy[kuk\n",
		"vks vkS vk v",
		"0123456789",
		"¤ÉÉiÉ +ÉÉè® BÉDªÉÉ cÉä ",
	}
	for _, in := range inputs {
		once := Convert(in)
		twice := Convert(once.Text)
		if twice.Text != once.Text {
			t.Errorf("reconverting %q output changed it: %q -> %q", in, once.Text, twice.Text)
		}
		if !twice.Clean() {
			t.Errorf("reconverting %q output produced residuals %v", in, twice.Residuals)
		}
	}
}

// Every rule must convert in isolation to exactly its replacement: longer
// patterns sort first, and no replacement value is itself matchable.
func TestEveryBuiltinRuleConvertsInIsolation(t *testing.T) {
	multi, single := Default().Tables()
	for _, rules := range [][]Mapping{multi.Rules(), single.Rules()} {
		for _, m := range rules {
			res := Convert(m.From)
			if res.Text != m.To {
				t.Errorf("Convert(%q) should be %q, is %q", m.From, m.To, res.Text)
			}
			if !res.Clean() {
				t.Errorf("Convert(%q) left residuals %v", m.From, res.Residuals)
			}
		}
	}
}

// Each rule's replacement runs over the whole buffer before the next rule
// starts, so a later rule may match text an earlier rule produced, and
// declaration order between equal-length patterns is observable.
func TestSequentialReplacementOrder(t *testing.T) {
	multi := []Mapping{{From: "ab", To: "XY"}}
	cases := []struct {
		name   string
		single []Mapping
		in     string
		out    string
	}{
		{"later rule rematches produced text",
			[]Mapping{{"c", "X"}, {"X", "Z"}}, "abc", "ZYZ"},
		{"later rule rematches produced text, shifted",
			[]Mapping{{"c", "X"}, {"X", "Z"}}, "cab", "ZZY"},
		{"earlier rule does not see later output",
			[]Mapping{{"X", "Z"}, {"c", "X"}}, "abc", "ZYX"},
		{"earlier rule does not see later output, shifted",
			[]Mapping{{"X", "Z"}, {"c", "X"}}, "cab", "XZY"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			conv, err := NewConverter(WithMappings(multi, c.single))
			if err != nil {
				t.Fatal(err)
			}
			res := conv.Convert(c.in)
			if res.Text != c.out {
				t.Errorf("Convert(%q) should be %q, is %q", c.in, c.out, res.Text)
			}
		})
	}
}

func TestKeepASCIIDigits(t *testing.T) {
	conv, err := NewConverter(KeepASCIIDigits())
	if err != nil {
		t.Fatal(err)
	}
	if res := conv.Convert("lu~ 2025"); res.Text != "सन् 2025" {
		t.Errorf("with ASCII digits, got %q", res.Text)
	}
	if res := Convert("lu~ 2025"); res.Text != "सन् २०२५" {
		t.Errorf("with default digits, got %q", res.Text)
	}
}

func TestWithMappingsKeepsBuiltinForNil(t *testing.T) {
	extra := []Mapping{{From: "Ù", To: "त्त्"}}
	extra = append(extra, singleUnitMappings...)
	conv, err := NewConverter(WithMappings(nil, extra))
	if err != nil {
		t.Fatal(err)
	}
	res := conv.Convert("ÙkÙ")
	if res.Text != "त्तत्त्" {
		t.Errorf("ÙkÙ should be त्तत्त्, is %q", res.Text)
	}
	if !res.Clean() {
		t.Errorf("unexpected residuals %v", res.Residuals)
	}
}

func TestDefaultTableSizes(t *testing.T) {
	multi, single := Default().Tables()
	if multi.Len() != 50 {
		t.Errorf("multi-unit table should hold 50 rules, holds %d", multi.Len())
	}
	if single.Len() != 133 {
		t.Errorf("single-unit table should hold 133 rules, holds %d", single.Len())
	}
}

func TestConvertConcurrent(t *testing.T) {
	const workers = 8
	const rounds = 200
	in := "fdrkc i<+us\nfy[kuk\n"
	want := Convert(in)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				res := Convert(in)
				if res.Text != want.Text || !reflect.DeepEqual(res.Residuals, want.Residuals) {
					t.Errorf("concurrent conversion diverged: %q", res.Text)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkConvert(b *testing.B) {
	in := strings.Repeat("fdrkc i<+us fy[kuk ", 32)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Convert(in)
	}
}
