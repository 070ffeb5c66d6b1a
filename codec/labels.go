package codec

// SenML-CBOR labels carried as record map keys. The schema models exactly
// these; every other label in the standard window is rejected as
// unsupported, and keys outside the window are vendor extensions.
const (
	LabelBaseName int64 = -2
	LabelBaseTime int64 = -3
	LabelName     int64 = 0
	LabelTime     int64 = 6

	// Value-bearing labels. A record holds at most one value, so at most
	// one of these may appear per record map.
	LabelValueNumeric    int64 = 2 // integer or float
	LabelValueText       int64 = 3
	LabelValueBoolean    int64 = 4
	LabelValueOpaque     int64 = 8
	LabelValueObjectLink int64 = 9
)

// The standard SenML label window. Keys inside it that are not modeled
// above (base version, units, sums and the like) are ErrUnsupportedField
// rather than extensions: treating them as vendor data would silently
// change their meaning.
const (
	stdLabelMin int64 = -6
	stdLabelMax int64 = 9
)

// maxRecordPairs bounds a record map's declared size: five standard fields
// plus five extensions. Larger declarations fail before any pair is read.
const maxRecordPairs = 10
