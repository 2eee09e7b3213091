package notion

import (
	"strings"
)

// Page is a single record returned by the hosted database.
type Page struct {
	ID          string               `json:"id"`
	CreatedTime string               `json:"created_time,omitempty"`
	Archived    bool                 `json:"archived"`
	Properties  map[string]*Property `json:"properties"`
}

// Prop returns the named property or nil. All Property accessors are
// nil-safe, so callers can chain without checking.
func (p *Page) Prop(name string) *Property {
	if p == nil || p.Properties == nil {
		return nil
	}
	return p.Properties[name]
}

// Property is the union of every property kind the hosted database can
// return. Only the member matching Type is populated; every member is
// optional.
type Property struct {
	ID          string     `json:"id,omitempty"`
	Type        string     `json:"type,omitempty"`
	Title       []RichText `json:"title,omitempty"`
	RichText    []RichText `json:"rich_text,omitempty"`
	Number      *float64   `json:"number,omitempty"`
	Select      *Option    `json:"select,omitempty"`
	Status      *Option    `json:"status,omitempty"`
	MultiSelect []Option   `json:"multi_select,omitempty"`
	Date        *DateValue `json:"date,omitempty"`
	Checkbox    *bool      `json:"checkbox,omitempty"`
	URL         *string    `json:"url,omitempty"`
	Email       *string    `json:"email,omitempty"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	Formula     *Formula   `json:"formula,omitempty"`
	Rollup      *Rollup    `json:"rollup,omitempty"`
	People      []User     `json:"people,omitempty"`
	Relation    []Relation `json:"relation,omitempty"`
	Created     *string    `json:"created_time,omitempty"`
}

// RichText is a text fragment. Reads carry PlainText; writes carry Text.
type RichText struct {
	PlainText string       `json:"plain_text,omitempty"`
	Text      *TextContent `json:"text,omitempty"`
}

// TextContent is the writable part of a rich text fragment.
type TextContent struct {
	Content string `json:"content"`
}

func (r RichText) String() string {
	if r.PlainText != "" {
		return r.PlainText
	}
	if r.Text != nil {
		return r.Text.Content
	}
	return ""
}

// Option is a select, status or multi-select value.
type Option struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// DateValue is a date or date range.
type DateValue struct {
	Start string  `json:"start"`
	End   *string `json:"end,omitempty"`
}

// Formula is a computed property value.
type Formula struct {
	Type    string     `json:"type,omitempty"`
	String  *string    `json:"string,omitempty"`
	Number  *float64   `json:"number,omitempty"`
	Boolean *bool      `json:"boolean,omitempty"`
	Date    *DateValue `json:"date,omitempty"`
}

// Rollup is an aggregate computed over a relation.
type Rollup struct {
	Type   string     `json:"type,omitempty"`
	Number *float64   `json:"number,omitempty"`
	Date   *DateValue `json:"date,omitempty"`
}

// User is a workspace member referenced by a people property.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Relation references another page.
type Relation struct {
	ID string `json:"id"`
}

// Text returns the first fragment of a title or rich text property, the
// way the dashboard displays single-line text.
func (p *Property) Text() string {
	if p == nil {
		return ""
	}
	if len(p.Title) > 0 {
		return p.Title[0].String()
	}
	if len(p.RichText) > 0 {
		return p.RichText[0].String()
	}
	return ""
}

// Num returns the plain number value, or 0.
func (p *Property) Num() float64 {
	if p == nil || p.Number == nil {
		return 0
	}
	return *p.Number
}

// NumberValue returns a number from a plain, formula or rollup property.
func (p *Property) NumberValue() float64 {
	if p == nil {
		return 0
	}
	switch {
	case p.Number != nil:
		return *p.Number
	case p.Formula != nil && p.Formula.Number != nil:
		return *p.Formula.Number
	case p.Rollup != nil && p.Rollup.Number != nil:
		return *p.Rollup.Number
	}
	return 0
}

// FormulaNumber returns a numeric formula result, or 0.
func (p *Property) FormulaNumber() float64 {
	if p == nil || p.Formula == nil || p.Formula.Number == nil {
		return 0
	}
	return *p.Formula.Number
}

// FormulaString returns a string formula result, or "".
func (p *Property) FormulaString() string {
	if p == nil || p.Formula == nil || p.Formula.String == nil {
		return ""
	}
	return *p.Formula.String
}

// RollupNumber returns a numeric rollup result, or 0.
func (p *Property) RollupNumber() float64 {
	if p == nil || p.Rollup == nil || p.Rollup.Number == nil {
		return 0
	}
	return *p.Rollup.Number
}

func (p *Property) SelectName() string {
	if p == nil || p.Select == nil {
		return ""
	}
	return p.Select.Name
}

func (p *Property) StatusName() string {
	if p == nil || p.Status == nil {
		return ""
	}
	return p.Status.Name
}

// Names returns multi-select option names; never nil.
func (p *Property) Names() []string {
	if p == nil {
		return []string{}
	}
	names := make([]string, 0, len(p.MultiSelect))
	for _, o := range p.MultiSelect {
		names = append(names, o.Name)
	}
	return names
}

// DateStart returns the start of a date property, or "".
func (p *Property) DateStart() string {
	if p == nil || p.Date == nil {
		return ""
	}
	return p.Date.Start
}

// AnyDate returns the first non-empty date found in a date, formula or
// rollup property. Formula strings are returned as-is.
func (p *Property) AnyDate() string {
	if p == nil {
		return ""
	}
	if p.Date != nil && p.Date.Start != "" {
		return p.Date.Start
	}
	if f := p.Formula; f != nil {
		if f.Date != nil && f.Date.Start != "" {
			return f.Date.Start
		}
		if f.String != nil && strings.TrimSpace(*f.String) != "" {
			return strings.TrimSpace(*f.String)
		}
	}
	if p.Rollup != nil && p.Rollup.Date != nil {
		return p.Rollup.Date.Start
	}
	return ""
}

func (p *Property) Bool() bool {
	if p == nil || p.Checkbox == nil {
		return false
	}
	return *p.Checkbox
}

func (p *Property) URLValue() string {
	if p == nil || p.URL == nil {
		return ""
	}
	return *p.URL
}

func (p *Property) EmailValue() string {
	if p == nil || p.Email == nil {
		return ""
	}
	return *p.Email
}

func (p *Property) PhoneValue() string {
	if p == nil || p.PhoneNumber == nil {
		return ""
	}
	return *p.PhoneNumber
}

// CreatedTimeValue returns a created_time property value, or "".
func (p *Property) CreatedTimeValue() string {
	if p == nil || p.Created == nil {
		return ""
	}
	return *p.Created
}

// PeopleNames returns the names of referenced users; never nil.
func (p *Property) PeopleNames() []string {
	if p == nil {
		return []string{}
	}
	names := make([]string, 0, len(p.People))
	for _, u := range p.People {
		names = append(names, u.Name)
	}
	return names
}

// RelationIDs returns the ids of related pages; never nil.
func (p *Property) RelationIDs() []string {
	if p == nil {
		return []string{}
	}
	ids := make([]string, 0, len(p.Relation))
	for _, r := range p.Relation {
		ids = append(ids, r.ID)
	}
	return ids
}

// Database is a collection schema.
type Database struct {
	ID         string                     `json:"id"`
	Properties map[string]*SchemaProperty `json:"properties"`
}

// SchemaProperty describes one column of a database, including the
// option sets of select-like columns.
type SchemaProperty struct {
	ID          string     `json:"id,omitempty"`
	Name        string     `json:"name,omitempty"`
	Type        string     `json:"type,omitempty"`
	Select      *OptionSet `json:"select,omitempty"`
	Status      *OptionSet `json:"status,omitempty"`
	MultiSelect *OptionSet `json:"multi_select,omitempty"`
}

// OptionSet lists allowed values.
type OptionSet struct {
	Options []Option `json:"options"`
}

// Options returns the allowed values of a select, status or multi-select
// column; never nil.
func (d *Database) Options(name string) []Option {
	if d == nil || d.Properties == nil {
		return []Option{}
	}
	sp := d.Properties[name]
	if sp == nil {
		return []Option{}
	}
	for _, set := range []*OptionSet{sp.Status, sp.Select, sp.MultiSelect} {
		if set != nil && set.Options != nil {
			return set.Options
		}
	}
	return []Option{}
}

// QueryRequest narrows and orders a database query.
type QueryRequest struct {
	Filter *Filter `json:"filter,omitempty"`
	Sorts  []Sort  `json:"sorts,omitempty"`
	// Limit caps the total number of results; 0 fetches every page.
	Limit int `json:"-"`
}

// Filter is a single-property filter. Only relation filters are used.
type Filter struct {
	Property string          `json:"property"`
	Relation *RelationFilter `json:"relation,omitempty"`
}

type RelationFilter struct {
	Contains string `json:"contains"`
}

// Sort orders by a property or by a page timestamp.
type Sort struct {
	Property  string `json:"property,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Direction string `json:"direction"`
}

const (
	Ascending  = "ascending"
	Descending = "descending"
)

// RelationContains filters pages whose relation property references id.
func RelationContains(property, id string) *Filter {
	return &Filter{Property: property, Relation: &RelationFilter{Contains: id}}
}

// SortBy orders by a property.
func SortBy(property, direction string) Sort {
	return Sort{Property: property, Direction: direction}
}

// SortByCreated orders by page creation time.
func SortByCreated(direction string) Sort {
	return Sort{Timestamp: "created_time", Direction: direction}
}
