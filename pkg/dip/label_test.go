package dip

import (
	"reflect"
	"testing"
)

func TestPinLabelNames(t *testing.T) {
	tests := []struct {
		raw     string
		names   []string
		primary string
	}{
		{"VDD", []string{"VDD"}, "VDD"},
		{"PB3, ADC3 ,XTAL1", []string{"PB3", "ADC3", "XTAL1"}, "PB3"},
		{"", []string{""}, ""},
		{"A,,B", []string{"A", "", "B"}, "A"},
	}

	for _, tt := range tests {
		label := NewPinLabel(tt.raw)
		if got := label.Names(); !reflect.DeepEqual(got, tt.names) {
			t.Errorf("Names(%q) = %q, want %q", tt.raw, got, tt.names)
		}
		if got := label.Primary(); got != tt.primary {
			t.Errorf("Primary(%q) = %q, want %q", tt.raw, got, tt.primary)
		}
		if got := label.Raw(); got != tt.raw {
			t.Errorf("Raw() = %q, want %q", got, tt.raw)
		}
	}
}

func TestPinLabelHorizontal(t *testing.T) {
	widths := []int{3, 4, 5}
	tests := []struct {
		name string
		raw  string
		left bool
		want string
	}{
		{"left full", "PB3, ADC3, XTAL1", true, "XTAL1 ADC3 PB3"},
		{"left short", "VCC", true, "           VCC"},
		{"left partial", "PB4, ADC2", true, "      ADC2 PB4"},
		{"right full", "PB1, MISO, INT0", false, "PB1 MISO INT0 "},
		{"right short", "RST", false, "RST  "},
		{"right narrow", "G", false, "G    "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewPinLabel(tt.raw).Horizontal(widths, tt.left); got != tt.want {
				t.Errorf("Horizontal(%v, %v) = %q, want %q", widths, tt.left, got, tt.want)
			}
		})
	}
}

func TestPinLabelVertical(t *testing.T) {
	widths := []int{3, 2}
	tests := []struct {
		name string
		raw  string
		top  bool
		want []string
	}{
		{"top full", "VCC, V+", true, []string{"V", "+", " ", "V", "C", "C"}},
		{"top short", "PA", true, []string{" ", " ", " ", " ", "P", "A"}},
		{"bottom full", "VCC, V+", false, []string{"V", "C", "C", " ", "V", "+"}},
		{"bottom short", "PA", false, []string{"P", "A", " ", " ", " ", " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewPinLabel(tt.raw).Vertical(widths, tt.top); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Vertical(%v, %v) = %q, want %q", widths, tt.top, got, tt.want)
			}
		})
	}
}
