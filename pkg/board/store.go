package board

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/iyouport-org/noticeboard/pkg/webapi"
)

// Store holds the snapshot from the last successful list fetch. It is
// only ever replaced wholesale and never re-sorted.
type Store struct {
	notices *arraylist.List
}

func NewStore() *Store {
	return &Store{notices: arraylist.New()}
}

// ReplaceAll swaps the held snapshot for notices.
func (s *Store) ReplaceAll(notices []webapi.Notice) {
	values := make([]interface{}, len(notices))
	for i, n := range notices {
		values[i] = n
	}
	list := arraylist.New()
	list.Add(values...)
	s.notices = list
}

func (s *Store) Len() int {
	return s.notices.Size()
}

func (s *Store) All() []webapi.Notice {
	return toNotices(s.notices)
}

// Filtered returns the notices whose decimal id or lower-cased title
// contains term, compared case-insensitively after trimming. An empty
// term yields the whole snapshot.
func (s *Store) Filtered(term string) []webapi.Notice {
	term = NormalizeTerm(term)
	if term == "" {
		return s.All()
	}
	return toNotices(s.notices.Select(func(index int, value interface{}) bool {
		return Matches(value.(webapi.Notice), term)
	}))
}

func NormalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// Matches expects term to be normalized already.
func Matches(notice webapi.Notice, term string) bool {
	return strings.Contains(strconv.FormatUint(uint64(notice.ID), 10), term) ||
		strings.Contains(strings.ToLower(notice.Title), term)
}

func toNotices(list *arraylist.List) []webapi.Notice {
	ret := make([]webapi.Notice, 0, list.Size())
	list.Each(func(index int, value interface{}) {
		ret = append(ret, value.(webapi.Notice))
	})
	return ret
}
