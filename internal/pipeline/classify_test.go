package pipeline

import "testing"

func TestCategorizeOccupation(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "transportation", input: "Truck driver", want: "Transportation"},
		{name: "technology", input: "Software engineer and web developer", want: "IT/Technology"},
		{name: "medical", input: "Cardiologist", want: "Medical"},
		{name: "table order wins", input: "Police officer", want: "Military/Intelligence"},
		{name: "unknown keyword", input: "Unemployed", want: "Unknown"},
		{name: "empty", input: "", want: "Unknown"},
		{name: "no keyword hit", input: "Basket weaver", want: "Other"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CategorizeOccupation(tc.input); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestCountAliases(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int
	}{
		{name: "comma separated", input: "Joey, J-Dog; The Snake", want: 3},
		{name: "aka separator", input: "John a/k/a Johnny", want: 2},
		{name: "pipe separator", input: "Slim | Big Slim", want: 2},
		{name: "placeholder dash", input: "-", want: 0},
		{name: "placeholder none", input: "None", want: 0},
		{name: "empty", input: "", want: 0},
		{name: "single", input: "El Jefe", want: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CountAliases(tc.input); got != tc.want {
				t.Fatalf("got %d want %d", got, tc.want)
			}
		})
	}
}

func TestSplitLanguages(t *testing.T) {
	first, second, third := SplitLanguages("English, Spanish, French, German")
	if first == nil || *first != "English" {
		t.Fatalf("first=%v", first)
	}
	if second == nil || *second != "Spanish" {
		t.Fatalf("second=%v", second)
	}
	if third == nil || *third != "French" {
		t.Fatalf("third=%v", third)
	}

	first, second, third = SplitLanguages("Spanish and English")
	if first == nil || *first != "Spanish" || second == nil || *second != "English" || third != nil {
		t.Fatalf("got %v %v %v", first, second, third)
	}

	first, second, third = SplitLanguages("")
	if first != nil || second != nil || third != nil {
		t.Fatalf("empty input: got %v %v %v", first, second, third)
	}
}

func TestFirstHairColor(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "slash compound", input: "Brown/Gray", want: "Brown"},
		{name: "parenthetical", input: "Black (balding)", want: "Black"},
		{name: "and compound", input: "brown and gray", want: "brown"},
		{name: "plain", input: "Blond", want: "Blond"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FirstHairColor(tc.input)
			if got == nil || *got != tc.want {
				t.Fatalf("got %v want %q", got, tc.want)
			}
		})
	}

	if got := FirstHairColor(""); got != nil {
		t.Fatalf("empty input: got %v", got)
	}
}

func TestDetectMarks(t *testing.T) {
	positives := []string{
		"Tattoo on left forearm",
		"He has a scar above his right eye",
		"pierced ears",
		"birthmark on neck",
	}
	for _, input := range positives {
		if !DetectMarks(input) {
			t.Fatalf("DetectMarks(%q) = false", input)
		}
	}

	negatives := []string{"", "None known", "wears glasses"}
	for _, input := range negatives {
		if DetectMarks(input) {
			t.Fatalf("DetectMarks(%q) = true", input)
		}
	}
}

func TestDetectDollarAmounts(t *testing.T) {
	if !DetectDollarAmounts("The FBI is offering a reward of up to $100,000 for information") {
		t.Fatalf("reward amount not detected")
	}
	if !DetectDollarAmounts("reward of $ 5,000.50") {
		t.Fatalf("spaced amount not detected")
	}
	if DetectDollarAmounts("The FBI is offering a reward for information") {
		t.Fatalf("false positive without amount")
	}
	if DetectDollarAmounts("") {
		t.Fatalf("false positive on empty")
	}
}

func TestBirthCountry(t *testing.T) {
	country, code := BirthCountry("Moscow, Russia")
	if country == nil || *country != "Russia" || code == nil || *code != "RUS" {
		t.Fatalf("got %v %v", country, code)
	}

	country, code = BirthCountry("Unknown")
	if country != nil || code != nil {
		t.Fatalf("unknown place: got %v %v", country, code)
	}

	country, code = BirthCountry("")
	if country != nil || code != nil {
		t.Fatalf("empty place: got %v %v", country, code)
	}

	country, code = BirthCountry("Gotham City")
	if country == nil || *country != "Gotham City" || code != nil {
		t.Fatalf("unmapped place: got %v %v", country, code)
	}
}
