package mongo

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/shestoi/GoBigTech/warehouse/internal/repository"
)

func TestToFilter(t *testing.T) {
	showEmpty := true

	tests := []struct {
		name     string
		query    repository.Query
		expected bson.D
		wantErr  bool
	}{
		{
			name:     "empty query selects all documents",
			query:    repository.Query{},
			expected: bson.D{},
		},
		{
			name:  "default list filter",
			query: repository.BuildQuery(repository.ListFilter{Owner: "u1"}),
			expected: bson.D{
				{Key: "user_ids", Value: "u1"},
				{Key: "quantity", Value: bson.M{"$gt": 0}},
			},
		},
		{
			name:  "show empty drops quantity constraint",
			query: repository.BuildQuery(repository.ListFilter{Owner: "u1", IncludeEmpty: &showEmpty}),
			expected: bson.D{
				{Key: "user_ids", Value: "u1"},
			},
		},
		{
			name:    "unknown field",
			query:   repository.Query{}.Where(repository.Condition{Field: "color", Op: repository.OpEq, Value: "red"}),
			wantErr: true,
		},
		{
			name:    "unknown operator",
			query:   repository.Query{}.Where(repository.Condition{Field: repository.FieldQuantity, Op: repository.Op(42), Value: 1}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := toFilter(tt.query)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, filter)
		})
	}
}
