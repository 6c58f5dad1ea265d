package profile

// AccessMode selects how a field is read from and written to its element.
type AccessMode int

const (
	// ModeValue reads/writes the element's value (inputs, selects).
	ModeValue AccessMode = iota
	// ModeText reads/writes the element's text content (editable regions).
	ModeText
)

// FieldSpec binds a record key to a UI element id and an access mode.
type FieldSpec struct {
	Key  string
	ID   string
	Mode AccessMode
}

// Document abstracts the form the profile editor is bound to. Lookups report
// whether the element exists; absent elements are never an error.
type Document interface {
	Value(id string) (string, bool)
	SetValue(id, value string) bool
	Text(id string) (string, bool)
	SetText(id, value string) bool
}

// ReadFields collects field values into a plain record. A missing element
// yields an empty-string default, never a failure.
func ReadFields(doc Document, specs []FieldSpec) map[string]string {
	record := make(map[string]string, len(specs))
	for _, spec := range specs {
		var value string
		var ok bool
		switch spec.Mode {
		case ModeText:
			value, ok = doc.Text(spec.ID)
		default:
			value, ok = doc.Value(spec.ID)
		}
		if !ok {
			value = ""
		}
		record[spec.Key] = value
	}
	return record
}

// WriteFields is the inverse of ReadFields. Only non-empty record values are
// written, so existing placeholder content survives; absent target elements
// degenerate to a no-op.
func WriteFields(doc Document, record map[string]string, specs []FieldSpec) {
	for _, spec := range specs {
		value := record[spec.Key]
		if value == "" {
			continue
		}
		switch spec.Mode {
		case ModeText:
			doc.SetText(spec.ID, value)
		default:
			doc.SetValue(spec.ID, value)
		}
	}
}

// FormDocument is an in-memory Document used by the editor session and tests.
type FormDocument struct {
	values map[string]string
	texts  map[string]string
}

func NewFormDocument() *FormDocument {
	return &FormDocument{
		values: make(map[string]string),
		texts:  make(map[string]string),
	}
}

// Register declares an element so reads and writes against it resolve.
func (d *FormDocument) Register(id string, mode AccessMode) {
	switch mode {
	case ModeText:
		if _, ok := d.texts[id]; !ok {
			d.texts[id] = ""
		}
	default:
		if _, ok := d.values[id]; !ok {
			d.values[id] = ""
		}
	}
}

func (d *FormDocument) Value(id string) (string, bool) {
	v, ok := d.values[id]
	return v, ok
}

func (d *FormDocument) SetValue(id, value string) bool {
	if _, ok := d.values[id]; !ok {
		return false
	}
	d.values[id] = value
	return true
}

func (d *FormDocument) Text(id string) (string, bool) {
	v, ok := d.texts[id]
	return v, ok
}

func (d *FormDocument) SetText(id, value string) bool {
	if _, ok := d.texts[id]; !ok {
		return false
	}
	d.texts[id] = value
	return true
}
