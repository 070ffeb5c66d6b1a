package senml

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/telwire/senmlcbor/errs"
)

func packOfSize(n int) Pack {
	records := make([]Record, n)
	for i := range records {
		records[i] = Record{Name: String("s"), Value: Integer(int64(i))}
	}

	return Pack{Records: records}
}

func TestPackAppend(t *testing.T) {
	t.Run("UpToLimit", func(t *testing.T) {
		var pack Pack
		for i := range MaxPackRecords {
			require.NoError(t, pack.Append(Record{Value: Integer(int64(i))}))
		}
		require.Equal(t, MaxPackRecords, pack.Len())
	})

	t.Run("OneOverLimit", func(t *testing.T) {
		pack := packOfSize(MaxPackRecords)
		err := pack.Append(Record{Value: Integer(0)})
		require.ErrorIs(t, err, errs.ErrCapacityExceeded)
		require.Equal(t, MaxPackRecords, pack.Len())
	})

	t.Run("BatchOverLimit", func(t *testing.T) {
		pack := packOfSize(MaxPackRecords - 1)
		err := pack.Append(Record{}, Record{})
		require.ErrorIs(t, err, errs.ErrCapacityExceeded)
		require.Equal(t, MaxPackRecords-1, pack.Len())
	})
}

func TestPackValidate(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		require.NoError(t, Pack{}.Validate())
	})

	t.Run("AtLimit", func(t *testing.T) {
		require.NoError(t, packOfSize(MaxPackRecords).Validate())
	})

	t.Run("OverLimit", func(t *testing.T) {
		require.ErrorIs(t, packOfSize(MaxPackRecords+1).Validate(), errs.ErrCapacityExceeded)
	})

	t.Run("BadRecordReported", func(t *testing.T) {
		pack := packOfSize(3)
		for i := range MaxRecordExtensions + 1 {
			pack.Records[1].Extensions = append(pack.Records[1].Extensions,
				Extension{Key: int32(100 + i), Value: Integer(1)})
		}

		err := pack.Validate()
		require.ErrorIs(t, err, errs.ErrCapacityExceeded)
		require.Contains(t, err.Error(), "record 1")
	})
}

func TestPackEqual(t *testing.T) {
	t.Run("Identical", func(t *testing.T) {
		require.True(t, packOfSize(3).Equal(packOfSize(3)))
	})

	t.Run("LengthDiffers", func(t *testing.T) {
		require.False(t, packOfSize(3).Equal(packOfSize(4)))
	})

	t.Run("OrderMatters", func(t *testing.T) {
		a := Pack{Records: []Record{{Value: Integer(1)}, {Value: Integer(2)}}}
		b := Pack{Records: []Record{{Value: Integer(2)}, {Value: Integer(1)}}}
		require.False(t, a.Equal(b))
	})

	t.Run("BothEmpty", func(t *testing.T) {
		require.True(t, Pack{}.Equal(Pack{}))
	})
}
