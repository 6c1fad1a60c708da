package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() Submission {
	return Submission{Age: "25", Gender: "male", Frequency: "daily", Satisfaction: "5"}
}

func TestSubmission_Validate(t *testing.T) {
	t.Run("accepts complete submission", func(t *testing.T) {
		assert.NoError(t, validSubmission().Validate())
	})

	t.Run("accepts every enum value", func(t *testing.T) {
		for _, g := range Genders {
			for _, f := range Frequencies {
				for _, s := range SatisfactionScores {
					sub := Submission{Age: "30代", Gender: g, Frequency: f, Satisfaction: s}
					assert.NoError(t, sub.Validate(), "%s/%s/%s", g, f, s)
				}
			}
		}
	})

	missing := []struct {
		name   string
		mutate func(*Submission)
		field  string
	}{
		{"age", func(s *Submission) { s.Age = "" }, "age"},
		{"gender", func(s *Submission) { s.Gender = "" }, "gender"},
		{"frequency", func(s *Submission) { s.Frequency = "" }, "frequency"},
		{"satisfaction", func(s *Submission) { s.Satisfaction = "" }, "satisfaction"},
		{"first of several", func(s *Submission) { s.Frequency = ""; s.Gender = "" }, "gender"},
		{"missing wins over invalid", func(s *Submission) { s.Gender = "alien"; s.Satisfaction = "" }, "satisfaction"},
		{"all", func(s *Submission) { *s = Submission{} }, "age"},
	}
	for _, tt := range missing {
		t.Run("missing "+tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(&sub)

			err := sub.Validate()
			var target *MissingFieldError
			require.True(t, errors.As(err, &target), "got %v", err)
			assert.Equal(t, tt.field, target.Field)
			assert.Equal(t, "Required field '"+tt.field+"' is missing", err.Error())
		})
	}

	invalid := []struct {
		name   string
		mutate func(*Submission)
		field  string
	}{
		{"gender", func(s *Submission) { s.Gender = "alien" }, "gender"},
		{"frequency", func(s *Submission) { s.Frequency = "hourly" }, "frequency"},
		{"satisfaction out of range", func(s *Submission) { s.Satisfaction = "6" }, "satisfaction"},
		{"satisfaction zero", func(s *Submission) { s.Satisfaction = "0" }, "satisfaction"},
		{"order gender first", func(s *Submission) { s.Gender = "x"; s.Frequency = "y" }, "gender"},
		{"order frequency before satisfaction", func(s *Submission) { s.Frequency = "y"; s.Satisfaction = "9" }, "frequency"},
	}
	for _, tt := range invalid {
		t.Run("invalid "+tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(&sub)

			err := sub.Validate()
			var target *InvalidValueError
			require.True(t, errors.As(err, &target), "got %v", err)
			assert.Equal(t, tt.field, target.Field)
			assert.Equal(t, "Invalid "+tt.field+" value", err.Error())
		})
	}
}

func TestNewSubmission(t *testing.T) {
	t.Run("reads string fields", func(t *testing.T) {
		sub := NewSubmission(map[string]any{
			"age":          "25",
			"gender":       "female",
			"frequency":    "weekly",
			"satisfaction": "4",
			"feedback":     "よかった",
			"userId":       "U123",
			"displayName":  "テスト",
		})
		assert.Equal(t, Submission{
			Age: "25", Gender: "female", Frequency: "weekly", Satisfaction: "4",
			Feedback: "よかった", UserID: "U123", DisplayName: "テスト",
		}, sub)
	})

	t.Run("stringifies numbers for free-form fields", func(t *testing.T) {
		sub := NewSubmission(map[string]any{"age": float64(25), "gender": "male", "frequency": "daily", "satisfaction": "3"})
		assert.Equal(t, "25", sub.Age)
		assert.NoError(t, sub.Validate())
	})

	t.Run("numeric satisfaction is not an enum string", func(t *testing.T) {
		sub := NewSubmission(map[string]any{"age": "25", "gender": "male", "frequency": "daily", "satisfaction": float64(5)})
		var target *InvalidValueError
		require.ErrorAs(t, sub.Validate(), &target)
		assert.Equal(t, "satisfaction", target.Field)
		assert.Equal(t, "Invalid satisfaction value", target.Error())
	})

	t.Run("non string enum still counts as present", func(t *testing.T) {
		sub := NewSubmission(map[string]any{"gender": float64(1), "frequency": "daily", "satisfaction": float64(5)})
		var missing *MissingFieldError
		require.ErrorAs(t, sub.Validate(), &missing)
		assert.Equal(t, "age", missing.Field)

		sub = NewSubmission(map[string]any{"age": "25", "gender": "female", "frequency": float64(2), "satisfaction": float64(5)})
		var invalid *InvalidValueError
		require.ErrorAs(t, sub.Validate(), &invalid)
		assert.Equal(t, "frequency", invalid.Field)
	})

	t.Run("trims userId", func(t *testing.T) {
		sub := NewSubmission(map[string]any{"userId": "  U123 "})
		assert.Equal(t, "U123", sub.UserID)
	})

	t.Run("treats falsy values as absent", func(t *testing.T) {
		sub := NewSubmission(map[string]any{
			"age":          nil,
			"gender":       "",
			"frequency":    false,
			"satisfaction": float64(0),
		})
		assert.Equal(t, Submission{}, sub)
	})

	t.Run("non enum scalars fail as invalid", func(t *testing.T) {
		sub := NewSubmission(map[string]any{"age": "25", "gender": true, "frequency": "daily", "satisfaction": "5"})
		var target *InvalidValueError
		require.ErrorAs(t, sub.Validate(), &target)
		assert.Equal(t, "gender", target.Field)
	})
}
