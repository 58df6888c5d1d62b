package board

import (
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/iyouport-org/noticeboard/pkg/webapi"
)

func sampleNotices() []webapi.Notice {
	return []webapi.Notice{
		{ID: 12, Title: "Power outage", Description: "Block 4"},
		{ID: 3, Title: "Water supply", Description: "Tuesday"},
		{ID: 120, Title: "Library hours", Description: "Closed on Sunday"},
		{ID: 7, Title: "POWER restored", Description: "All blocks"},
	}
}

func TestStoreFilteredEmptyTermIsWholeSnapshot(t *testing.T) {
	s := NewStore()
	s.ReplaceAll(sampleNotices())
	for _, term := range []string{"", "   ", "\t"} {
		if got := s.Filtered(term); !reflect.DeepEqual(got, sampleNotices()) {
			t.Errorf("Filtered(%q) = %v, want full snapshot in server order", term, got)
		}
	}
}

func TestStoreFiltered(t *testing.T) {
	s := NewStore()
	s.ReplaceAll(sampleNotices())
	tests := []struct {
		term string
		ids  []uint
	}{
		{"power", []uint{12, 7}},
		{"  POWER ", []uint{12, 7}},
		{"12", []uint{12, 120}},
		{"3", []uint{3}},
		{"block", nil}, // description is not searched
		{"zzz", nil},
		{"l", []uint{3, 120}},
	}
	for _, tt := range tests {
		var ids []uint
		for _, n := range s.Filtered(tt.term) {
			ids = append(ids, n.ID)
		}
		if !reflect.DeepEqual(ids, tt.ids) {
			t.Errorf("Filtered(%q) ids = %v, want %v", tt.term, ids, tt.ids)
		}
	}
}

func TestStoreFilteredIsSubsetAndMatchesDefinition(t *testing.T) {
	all := sampleNotices()
	s := NewStore()
	s.ReplaceAll(all)
	for _, term := range []string{"", "p", "1", "20", "ower", "SUPPLY", "x", "hours", " 7"} {
		filtered := s.Filtered(term)
		in := make(map[uint]bool)
		for _, n := range filtered {
			in[n.ID] = true
		}
		normalized := strings.ToLower(strings.TrimSpace(term))
		for _, n := range all {
			want := strings.Contains(strconv.Itoa(int(n.ID)), normalized) ||
				strings.Contains(strings.ToLower(n.Title), normalized)
			if in[n.ID] != want {
				t.Errorf("term %q, notice %d: included=%v, want %v", term, n.ID, in[n.ID], want)
			}
		}
		// order is preserved: filtered is a subsequence of all
		j := 0
		for _, n := range all {
			if j < len(filtered) && filtered[j].ID == n.ID {
				j++
			}
		}
		if j != len(filtered) {
			t.Errorf("term %q: %v is not a subsequence of the snapshot", term, filtered)
		}
	}
}

func TestStoreReplaceAll(t *testing.T) {
	s := NewStore()
	if s.Len() != 0 || len(s.All()) != 0 {
		t.Fatal("new store should be empty")
	}
	s.ReplaceAll(sampleNotices())
	s.ReplaceAll([]webapi.Notice{{ID: 99, Title: "Only"}})
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if all := s.All(); all[0].ID != 99 || all[0].Title != "Only" {
		t.Errorf("All() = %v, want only the new snapshot", all)
	}
}
