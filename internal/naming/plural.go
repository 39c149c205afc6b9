package naming

import "strings"

// builtinIrregulars maps singular words to plurals that the suffix rules
// would get wrong. Uncountable words map to themselves.
var builtinIrregulars = map[string]string{
	"person": "people",
	"man":    "men",
	"woman":  "women",
	"child":  "children",
	"tooth":  "teeth",
	"foot":   "feet",
	"mouse":  "mice",
	"goose":  "geese",
	"ox":     "oxen",

	"sheep":       "sheep",
	"fish":        "fish",
	"deer":        "deer",
	"series":      "series",
	"species":     "species",
	"news":        "news",
	"equipment":   "equipment",
	"information": "information",
}

// Pluralize pluralizes word with the built-in irregular table.
func Pluralize(word string) string {
	return defaultDeriver.Pluralize(word)
}

// Pluralize returns the English plural of a snake-case word. Only the last
// "_"-separated segment is pluralized.
func (d *Deriver) Pluralize(word string) string {
	prefix, last := "", word
	if i := strings.LastIndexByte(word, '_'); i >= 0 {
		prefix, last = word[:i+1], word[i+1:]
	}
	if last == "" {
		return word
	}

	if p, ok := d.irregular[strings.ToLower(last)]; ok {
		return prefix + p
	}

	switch {
	case strings.HasSuffix(last, "s"), strings.HasSuffix(last, "x"), strings.HasSuffix(last, "z"),
		strings.HasSuffix(last, "ch"), strings.HasSuffix(last, "sh"):
		return prefix + last + "es"
	case strings.HasSuffix(last, "y") && len(last) > 1 && !isVowel(last[len(last)-2]):
		return prefix + last[:len(last)-1] + "ies"
	default:
		return prefix + last + "s"
	}
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}
