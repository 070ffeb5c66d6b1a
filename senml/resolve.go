package senml

// Measurement is one record's effective view after base-field resolution:
// the fully qualified name, the absolute time, and the reading.
type Measurement struct {
	// Name is the effective name. When both a base name and a record name
	// are in effect it is base + "/" + name; with only one present it is
	// that one; with neither it is empty.
	Name string

	// Time is the effective time: the inherited base time plus the record's
	// own offset, with absent terms contributing zero.
	Time int64

	// Value is the record's reading, or nil when the record has none.
	Value Value
}

// Resolve derives the effective name and time of every record in the pack.
//
// Base fields fold left to right: a BaseName or BaseTime on a record takes
// effect for that record and every later one until another record replaces
// it. Resolution never fails and never mutates the pack; the result has one
// measurement per record, in pack order.
func (p Pack) Resolve() []Measurement {
	resolved := make([]Measurement, len(p.Records))

	var (
		baseName    string
		hasBaseName bool
		baseTime    int64
	)
	for i, r := range p.Records {
		if r.BaseName != nil {
			baseName = *r.BaseName
			hasBaseName = true
		}
		if r.BaseTime != nil {
			baseTime = *r.BaseTime
		}

		var name string
		switch {
		case hasBaseName && r.Name != nil:
			name = baseName + "/" + *r.Name
		case hasBaseName:
			name = baseName
		case r.Name != nil:
			name = *r.Name
		}

		time := baseTime
		if r.Time != nil {
			time += *r.Time
		}

		resolved[i] = Measurement{Name: name, Time: time, Value: r.Value}
	}

	return resolved
}
