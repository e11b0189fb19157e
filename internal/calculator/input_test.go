package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected Input
	}{
		{name: "Digit", key: "7", expected: Input{Kind: InputDigit, Digit: '7'}},
		{name: "Decimal", key: ".", expected: Input{Kind: InputDecimal}},
		{name: "Plus", key: "+", expected: Input{Kind: InputOperator, Operator: OpAdd}},
		{name: "Divide", key: "/", expected: Input{Kind: InputOperator, Operator: OpDivide}},
		{name: "Enter", key: "Enter", expected: Input{Kind: InputEquals}},
		{name: "Equals sign", key: "=", expected: Input{Kind: InputEquals}},
		{name: "Escape", key: "Escape", expected: Input{Kind: InputClear}},
		{name: "Lowercase c", key: "c", expected: Input{Kind: InputClear}},
		{name: "Uppercase C", key: "C", expected: Input{Kind: InputClear}},
		{name: "Backspace", key: "Backspace", expected: Input{Kind: InputBackspace}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := Key(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, in)
		})
	}
}

func TestKeyRejectsOnScreenOnlyInputs(t *testing.T) {
	for _, key := range []string{"^", "%", "sqrt", "M+", "MR", "clear_history", "x", "10", ""} {
		t.Run(key, func(t *testing.T) {
			_, err := Key(key)
			assert.ErrorIs(t, err, ErrUnknownInput)
		})
	}
}

func TestButtonLabels(t *testing.T) {
	tests := []struct {
		label string
		id    string
	}{
		{label: "÷", id: "/"},
		{label: "×", id: "*"},
		{label: "−", id: "-"},
		{label: "x^y", id: "^"},
		{label: "⌫", id: "backspace"},
		{label: "Clear", id: "clear"},
		{label: "√", id: "sqrt"},
		{label: "√x", id: "sqrt"},
		{label: "x²", id: "square"},
		{label: "1/x", id: "inverse"},
		{label: "±", id: "negate"},
		{label: "Clear H", id: "clear_history"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			fromLabel, err := Button(tt.label)
			require.NoError(t, err)
			fromID, err := Button(tt.id)
			require.NoError(t, err)
			assert.Equal(t, fromID, fromLabel)
		})
	}
}

func TestButtonPercentForms(t *testing.T) {
	binary, err := Button("%")
	require.NoError(t, err)
	assert.Equal(t, Input{Kind: InputOperator, Operator: OpPercent}, binary)

	unary, err := Button("percent")
	require.NoError(t, err)
	assert.Equal(t, Input{Kind: InputUnary, Unary: UnaryPercent}, unary)
}

func TestButtonUnknown(t *testing.T) {
	_, err := Button("Enter")
	assert.ErrorIs(t, err, ErrUnknownInput)
}

func TestKeysAllOrNothing(t *testing.T) {
	inputs, err := Keys([]string{"5", "+", "F1"})
	assert.ErrorIs(t, err, ErrUnknownInput)
	assert.Nil(t, inputs)

	inputs, err = Keys([]string{"5", "+", "3", "Enter"})
	require.NoError(t, err)
	assert.Len(t, inputs, 4)
}

func TestKeyboardAndButtonsAgree(t *testing.T) {
	keys, err := Keys([]string{"1", "2", ".", "5", "*", "2", "Enter"})
	require.NoError(t, err)
	buttons, err := Buttons([]string{"1", "2", ".", "5", "×", "2", "="})
	require.NoError(t, err)

	fromKeys := New()
	fromKeys.Press(keys...)
	fromButtons := New()
	fromButtons.Press(buttons...)

	assert.Equal(t, "25", fromKeys.Display())
	assert.Equal(t, fromKeys.Snapshot(), fromButtons.Snapshot())
}

func TestClearHistoryButton(t *testing.T) {
	e := press(t, "9", "sqrt", "clear_history")
	assert.Empty(t, e.History())
	assert.Equal(t, "3", e.Display())
}
