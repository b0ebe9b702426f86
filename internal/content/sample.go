package content

// SampleCatalog is the built-in course used when no lesson root is configured.
// A few entries are untranslated on purpose; the default glossary fills them.
func SampleCatalog() Catalog {
	return Catalog{Lessons: []Lesson{
		{ID: "basics-01", Title: "Greetings", Level: "beginner", Entries: []Entry{
			{English: "hello", Hindi: "नमस्ते", Transliteration: "namaste"},
			{English: "good morning", Hindi: "सुप्रभात", Transliteration: "suprabhaat"},
			{English: "thank you", Hindi: "धन्यवाद", Transliteration: "dhanyavaad"},
			{English: "please", Hindi: "कृपया", Transliteration: "kripya"},
			{English: "goodbye", Hindi: "अलविदा", Transliteration: "alvida"},
		}},
		{ID: "basics-02", Title: "Family", Level: "beginner", Entries: []Entry{
			{English: "mother", Hindi: "माँ", Transliteration: "maan"},
			{English: "father", Hindi: "पिता", Transliteration: "pita"},
			{English: "brother", Hindi: "भाई", Transliteration: "bhai"},
			{English: "sister", Hindi: "", Transliteration: "behen"},
		}},
		{ID: "basics-03", Title: "Numbers", Level: "beginner", Entries: []Entry{
			{English: "one", Hindi: "एक", Transliteration: "ek"},
			{English: "two", Hindi: "दो", Transliteration: "do"},
			{English: "three", Hindi: "तीन", Transliteration: "teen"},
			{English: "four", Hindi: "चार", Transliteration: "chaar"},
			{English: "five", Hindi: "पाँच", Transliteration: "paanch"},
		}},
		{ID: "daily-01", Title: "At the market", Level: "intermediate", Entries: []Entry{
			{English: "how much is this", Hindi: "यह कितने का है", Transliteration: "yeh kitne ka hai"},
			{English: "too expensive", Hindi: "बहुत महंगा", Transliteration: "bahut mehenga"},
			{English: "vegetables", Hindi: "सब्ज़ियाँ", Transliteration: "sabziyaan"},
			{English: "receipt", Hindi: "", Transliteration: ""},
		}},
		{ID: "daily-02", Title: "Travel", Level: "intermediate", Entries: []Entry{
			{English: "train station", Hindi: "रेलवे स्टेशन", Transliteration: "railway station"},
			{English: "ticket", Hindi: "टिकट", Transliteration: "tikat"},
			{English: "left", Hindi: "बाएँ", Transliteration: "baayen"},
			{English: "right", Hindi: "दाएँ", Transliteration: "daayen"},
		}},
		{ID: "work-01", Title: "Job interview", Level: "advanced", Entries: []Entry{
			{English: "experience", Hindi: "अनुभव", Transliteration: "anubhav"},
			{English: "strengths", Hindi: "ताकत", Transliteration: "taakat"},
			{English: "deadline", Hindi: "समय सीमा", Transliteration: "samay seema"},
			{English: "salary", Hindi: "वेतन", Transliteration: "vetan"},
		}},
	}}
}

// DefaultGlossary supplies translations the enrichment step can fill in.
func DefaultGlossary() map[string]string {
	return map[string]string{
		"sister":  "बहन",
		"receipt": "रसीद",
		"meeting": "बैठक",
		"water":   "पानी",
	}
}
