package codec

import (
	"encoding/hex"
	"fmt"
	"math"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telwire/senmlcbor/senml"
)

func roundTrip(t *testing.T, pack senml.Pack) senml.Pack {
	t.Helper()

	data, err := Encode(pack)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)

	return got
}

func TestRoundTrip_ValueVariants(t *testing.T) {
	tests := []struct {
		name  string
		value senml.Value
	}{
		{"Integer", senml.Integer(21)},
		{"IntegerMin", senml.Integer(math.MinInt64)},
		{"IntegerMax", senml.Integer(math.MaxInt64)},
		{"Float", senml.Float(21.5)},
		{"Text", senml.Text("on")},
		{"TextEmpty", senml.Text("")},
		{"TextUTF8", senml.Text("temp°C")},
		{"BooleanTrue", senml.Boolean(true)},
		{"BooleanFalse", senml.Boolean(false)},
		{"Opaque", senml.Opaque([]byte{0xde, 0xad, 0xbe, 0xef})},
		{"OpaqueEmpty", senml.Opaque(nil)},
		{"ObjectLink", senml.ObjectLink("3303/0")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pack := senml.Pack{Records: []senml.Record{{
				Name:  senml.String("m"),
				Value: tt.value,
			}}}
			got := roundTrip(t, pack)
			assert.True(t, got.Equal(pack), "want %#v, got %#v", pack, got)
		})
	}
}

func TestRoundTrip_FieldCombinations(t *testing.T) {
	tests := []struct {
		name string
		rec  senml.Record
	}{
		{"Empty", senml.Record{}},
		{"BasesOnly", senml.Record{
			BaseName: senml.String("dev"),
			BaseTime: senml.Int64(1700000000),
		}},
		{"NameOnly", senml.Record{Name: senml.String("temp")}},
		{"TimeOnly", senml.Record{Time: senml.Int64(-30)}},
		{"ValueOnly", senml.Record{Value: senml.Integer(21)}},
		{"NegativeBaseTime", senml.Record{
			BaseTime: senml.Int64(-1),
			Value:    senml.Boolean(true),
		}},
		{"EmptyNames", senml.Record{
			BaseName: senml.String(""),
			Name:     senml.String(""),
		}},
		{"Full", senml.Record{
			BaseName: senml.String("urn:dev:ow:10e2073a01080063"),
			BaseTime: senml.Int64(1700000000),
			Name:     senml.String("temp"),
			Time:     senml.Int64(5),
			Value:    senml.Float(21.5),
			Extensions: []senml.Extension{
				{Key: 100, Value: senml.Integer(1)},
				{Key: -7, Value: senml.Text("x")},
			},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pack := senml.Pack{Records: []senml.Record{tt.rec}}
			got := roundTrip(t, pack)
			assert.True(t, got.Equal(pack), "want %#v, got %#v", pack, got)
		})
	}
}

func TestRoundTrip_ExtensionKeyBoundaries(t *testing.T) {
	// First keys on either side of the standard window, then the int32 rim.
	keys := []int32{10, -7, math.MaxInt32, math.MinInt32}

	exts := make([]senml.Extension, 0, len(keys))
	for _, key := range keys {
		exts = append(exts, senml.Extension{Key: key, Value: senml.Integer(int64(key))})
	}

	pack := senml.Pack{Records: []senml.Record{{Extensions: exts}}}
	got := roundTrip(t, pack)
	assert.True(t, got.Equal(pack))
}

func TestRoundTrip_MaxPack(t *testing.T) {
	records := make([]senml.Record, 0, senml.MaxPackRecords)
	for i := range senml.MaxPackRecords {
		records = append(records, senml.Record{
			Name:  senml.String(fmt.Sprintf("ch%02d", i)),
			Value: senml.Integer(int64(i)),
		})
	}

	pack := senml.Pack{Records: records}
	got := roundTrip(t, pack)
	require.Equal(t, senml.MaxPackRecords, got.Len())
	assert.True(t, got.Equal(pack))
}

func TestRoundTrip_SpecialFloats(t *testing.T) {
	t.Run("ExactValues", func(t *testing.T) {
		tests := []struct {
			name string
			val  float64
		}{
			{"SubnormalHalf", 5.960464477539063e-08},
			{"MaxHalf", 65504},
			{"AboveMaxHalf", 65505},
			{"SinglePrecision", 100000},
			{"MaxSingle", 3.4028234663852886e+38},
			{"DoublePrecision", 1.1},
			{"Huge", 1e300},
			{"PositiveInfinity", math.Inf(1)},
			{"NegativeInfinity", math.Inf(-1)},
			{"SignedZero", math.Copysign(0, -1)},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				pack := senml.Pack{Records: []senml.Record{{Value: senml.Float(tt.val)}}}
				got := roundTrip(t, pack)

				val, ok := got.Records[0].Value.(senml.Float)
				require.True(t, ok)
				assert.Equal(t, math.Float64bits(tt.val), math.Float64bits(float64(val)),
					"bit-exact round trip")
			})
		}
	})

	t.Run("NaNCollapses", func(t *testing.T) {
		// Every NaN payload lands on the half-width quiet NaN, so bit
		// identity is out; NaN-ness survives.
		pack := senml.Pack{Records: []senml.Record{{Value: senml.Float(math.NaN())}}}

		data, err := Encode(pack)
		require.NoError(t, err)
		assert.Equal(t, "81a102f97e00", hex.EncodeToString(data))

		got, err := Decode(data)
		require.NoError(t, err)

		val, ok := got.Records[0].Value.(senml.Float)
		require.True(t, ok)
		assert.True(t, math.IsNaN(float64(val)))
	})
}

func TestRoundTrip_NormalizesNonMinimalInput(t *testing.T) {
	// Key 0 and time 10 arrive in oversized arguments; re-encoding
	// produces the minimal-width form.
	pack, err := decodeHex(t, "81a2180061610619000a")
	require.NoError(t, err)

	data, err := Encode(pack)
	require.NoError(t, err)
	assert.Equal(t, "81a2006161060a", hex.EncodeToString(data))
}

func TestRoundTrip_DecodeEncodeIdentity(t *testing.T) {
	pack := senml.Pack{Records: []senml.Record{
		{
			BaseName: senml.String("dev"),
			BaseTime: senml.Int64(1000),
			Name:     senml.String("temp"),
			Value:    senml.Float(21.5),
			Extensions: []senml.Extension{
				{Key: 100, Value: senml.Opaque([]byte{0x01})},
			},
		},
		{Name: senml.String("humid"), Time: senml.Int64(5), Value: senml.Integer(40)},
	}}

	first, err := Encode(pack)
	require.NoError(t, err)

	decoded, err := Decode(first)
	require.NoError(t, err)

	second, err := Encode(decoded)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestInterop_WellFormed(t *testing.T) {
	pack := senml.Pack{Records: []senml.Record{
		{
			BaseName: senml.String("dev"),
			BaseTime: senml.Int64(1700000000),
			Name:     senml.String("temp"),
			Time:     senml.Int64(-5),
			Value:    senml.Float(21.5),
		},
		{Name: senml.String("door"), Value: senml.Boolean(true)},
		{Name: senml.String("raw"), Value: senml.Opaque([]byte{0xde, 0xad})},
	}}

	data, err := Encode(pack)
	require.NoError(t, err)
	assert.NoError(t, cbor.Wellformed(data))
}

func TestInterop_ReferenceDecodesOurOutput(t *testing.T) {
	pack := senml.Pack{Records: []senml.Record{{
		BaseName: senml.String("dev"),
		BaseTime: senml.Int64(1000),
		Name:     senml.String("temp"),
		Time:     senml.Int64(-5),
		Value:    senml.Float(21.5),
	}}}

	data, err := Encode(pack)
	require.NoError(t, err)

	var items []map[int64]any
	require.NoError(t, cbor.Unmarshal(data, &items))
	require.Len(t, items, 1)

	// The reference library widens unsigned integers to uint64 and
	// negative ones to int64 when decoding into any.
	want := map[int64]any{
		-2: "dev",
		-3: uint64(1000),
		0:  "temp",
		6:  int64(-5),
		2:  21.5,
	}
	assert.Equal(t, want, items[0])
}

func TestInterop_DecodesReferenceOutput(t *testing.T) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	require.NoError(t, err)

	data, err := enc.Marshal([]map[int64]any{
		{-2: "dev", 0: "temp", 2: 21.5},
		{0: "humid", 6: 5, 2: 40},
	})
	require.NoError(t, err)

	pack, err := Decode(data)
	require.NoError(t, err)

	want := senml.Pack{Records: []senml.Record{
		{
			BaseName: senml.String("dev"),
			Name:     senml.String("temp"),
			Value:    senml.Float(21.5),
		},
		{
			Name:  senml.String("humid"),
			Time:  senml.Int64(5),
			Value: senml.Integer(40),
		},
	}}
	assert.True(t, pack.Equal(want), "want %#v, got %#v", want, pack)
}

func TestInterop_ByteIdentityWhenOrdersCoincide(t *testing.T) {
	// The schema writes fields in a fixed order; core deterministic
	// encoding sorts keys bytewise. The two agree whenever the schema
	// order happens to be sorted, which holds for these shapes.
	enc, err := cbor.CoreDetEncOptions().EncMode()
	require.NoError(t, err)

	tests := []struct {
		name string
		rec  senml.Record
		ref  map[int64]any
	}{
		{
			"NameAndValue",
			senml.Record{Name: senml.String("temp"), Value: senml.Integer(21)},
			map[int64]any{0: "temp", 2: 21},
		},
		{
			"NameAndFloat",
			senml.Record{Name: senml.String("t"), Value: senml.Float(21.5)},
			map[int64]any{0: "t", 2: 21.5},
		},
		{
			"NameAndTime",
			senml.Record{Name: senml.String("t"), Time: senml.Int64(5)},
			map[int64]any{0: "t", 6: 5},
		},
		{
			"BasesOnly",
			senml.Record{BaseName: senml.String("dev"), BaseTime: senml.Int64(1000)},
			map[int64]any{-2: "dev", -3: 1000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ours, err := Encode(senml.Pack{Records: []senml.Record{tt.rec}})
			require.NoError(t, err)

			ref, err := enc.Marshal([]map[int64]any{tt.ref})
			require.NoError(t, err)

			assert.Equal(t, ref, ours)
		})
	}
}
