package language

import "strings"

type entry struct {
	code    string   // Scryfall printed-language code
	display string   // Human-readable name
	aliases []string // Word forms and vendor spellings
}

var languages = []entry{
	{"en", "English", []string{"english", "eng", "en-us"}},
	{"es", "Spanish", []string{"spanish", "spa", "sp"}},
	{"fr", "French", []string{"french", "fra", "fre"}},
	{"de", "German", []string{"german", "deu", "ger"}},
	{"it", "Italian", []string{"italian", "ita"}},
	{"pt", "Portuguese", []string{"portuguese", "por", "portuguese (brazil)", "pt-br"}},
	{"ja", "Japanese", []string{"japanese", "jpn", "jp"}},
	{"ko", "Korean", []string{"korean", "kor", "kr"}},
	{"ru", "Russian", []string{"russian", "rus"}},
	{"zhs", "Simplified Chinese", []string{"chinese", "s-chinese", "simplified chinese", "chinese simplified", "zh", "zh-cn", "chs"}},
	{"zht", "Traditional Chinese", []string{"t-chinese", "traditional chinese", "chinese traditional", "zh-tw", "cht"}},
	{"he", "Hebrew", []string{"hebrew"}},
	{"la", "Latin", []string{"latin"}},
	{"grc", "Ancient Greek", []string{"ancient greek", "greek"}},
	{"ar", "Arabic", []string{"arabic"}},
	{"sa", "Sanskrit", []string{"sanskrit"}},
	{"ph", "Phyrexian", []string{"phyrexian"}},
}

// Index maps built at init time.
var (
	byCode  map[string]*entry
	byAlias map[string]*entry
)

func init() {
	byCode = make(map[string]*entry, len(languages))
	byAlias = make(map[string]*entry, len(languages)*3)
	for i := range languages {
		e := &languages[i]
		byCode[e.code] = e
		for _, alias := range e.aliases {
			byAlias[alias] = e
		}
	}
}

func lookup(value string) *entry {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return nil
	}
	if e, ok := byCode[value]; ok {
		return e
	}
	if e, ok := byAlias[value]; ok {
		return e
	}
	return nil
}

// Normalize converts any recognized language spelling to its Scryfall code.
// Returns empty string for unrecognized input.
func Normalize(value string) string {
	if e := lookup(value); e != nil {
		return e.code
	}
	return ""
}

// Known reports whether the value maps to a recognized printed language.
func Known(value string) bool {
	return lookup(value) != nil
}

// Same reports whether two language values refer to the same printed
// language after alias normalization.
func Same(a, b string) bool {
	ea, eb := lookup(a), lookup(b)
	if ea == nil || eb == nil {
		return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
	}
	return ea == eb
}

// DisplayName returns a human-readable name for any recognized code.
// Returns "Unknown" for empty input, or the uppercased input otherwise.
func DisplayName(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Unknown"
	}
	if e := lookup(value); e != nil {
		return e.display
	}
	return strings.ToUpper(strings.TrimSpace(value))
}
