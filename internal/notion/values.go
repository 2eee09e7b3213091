package notion

// Properties is a write payload keyed by property name. Values are built
// with the helpers below; a nil inner value is sent as JSON null, which
// clears the property upstream.
type Properties map[string]any

func textFragments(s string) []RichText {
	return []RichText{{Text: &TextContent{Content: s}}}
}

// TitleValue sets a title property.
func TitleValue(s string) any {
	return map[string]any{"title": textFragments(s)}
}

// RichTextValue sets a rich text property.
func RichTextValue(s string) any {
	return map[string]any{"rich_text": textFragments(s)}
}

func StatusValue(name string) any {
	return map[string]any{"status": Option{Name: name}}
}

func SelectValue(name string) any {
	return map[string]any{"select": Option{Name: name}}
}

// MultiSelectValue replaces the full tag set.
func MultiSelectValue(names []string) any {
	opts := make([]Option, 0, len(names))
	for _, n := range names {
		opts = append(opts, Option{Name: n})
	}
	return map[string]any{"multi_select": opts}
}

// NumberValue sets a number; nil clears it.
func NumberValue(n *int64) any {
	if n == nil {
		return map[string]any{"number": nil}
	}
	return map[string]any{"number": *n}
}

// DateValueOf sets a date start; "" clears it.
func DateValueOf(start string) any {
	if start == "" {
		return map[string]any{"date": nil}
	}
	return map[string]any{"date": DateValue{Start: start}}
}

// URLValueOf sets a url; "" clears it.
func URLValueOf(s string) any {
	return map[string]any{"url": nullable(s)}
}

// EmailValueOf sets an email; "" clears it.
func EmailValueOf(s string) any {
	return map[string]any{"email": nullable(s)}
}

// PhoneValueOf sets a phone number; "" clears it.
func PhoneValueOf(s string) any {
	return map[string]any{"phone_number": nullable(s)}
}

func CheckboxValue(b bool) any {
	return map[string]any{"checkbox": b}
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
