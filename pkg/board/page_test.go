package board

import (
	"strings"
	"testing"
	"time"

	"github.com/iyouport-org/noticeboard/pkg/view"
	"github.com/iyouport-org/noticeboard/pkg/webapi"
)

func find(t *testing.T, root *view.Element, id string) *view.Element {
	t.Helper()
	found := root.Find(view.ByID(id))
	if len(found) != 1 {
		t.Fatalf("found %d elements with id %q, want 1", len(found), id)
	}
	return found[0]
}

func TestGridRendersOneCardPerNotice(t *testing.T) {
	s := State{Notices: sampleNotices(), Total: 4}
	page := Page(s, PageOptions{})
	cards := page.Find(view.ByClass("notice-card"))
	if len(cards) != 4 {
		t.Fatalf("rendered %d cards, want 4", len(cards))
	}
	first := cards[0]
	if got := first.Find(view.ByClass("notice-id"))[0].TextContent(); got != "ID: 12" {
		t.Errorf("id text = %q", got)
	}
	forms := first.Find(func(el *view.Element) bool { return el.Tag == "form" })
	if action, _ := forms[0].Attr("action"); action != "/edit/12" {
		t.Errorf("edit action = %q", action)
	}
	links := first.Find(view.ByClass("btn-delete"))
	if href, _ := links[0].Attr("href"); href != "/delete/12" {
		t.Errorf("delete href = %q", href)
	}
	if got := find(t, page, "totalNotices").TextContent(); got != "4" {
		t.Errorf("count = %q, want 4", got)
	}
	if len(page.Find(view.ByID("emptyState"))) != 0 {
		t.Error("empty state rendered next to cards")
	}
}

func TestCardEscapesUserText(t *testing.T) {
	n := webapi.Notice{ID: 1, Title: `<script>alert('x')</script>`, Description: `"quoted" & <b>bold</b>`}
	out := view.String(Card(n))
	if strings.Contains(out, "<script>") || strings.Contains(out, "<b>") {
		t.Fatalf("card contains executable markup: %s", out)
	}
	for _, want := range []string{
		"&lt;script&gt;alert(&#039;x&#039;)&lt;/script&gt;",
		"&quot;quoted&quot; &amp; &lt;b&gt;bold&lt;/b&gt;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("card missing %q: %s", want, out)
		}
	}
}

func TestEmptyStatesAreDistinct(t *testing.T) {
	empty := Page(State{}, PageOptions{})
	noMatch := Page(State{Search: "zzz", Total: 3}, PageOptions{})

	emptyText := find(t, empty, "emptyState").TextContent()
	noMatchText := find(t, noMatch, "emptyState").TextContent()
	if !strings.Contains(emptyText, EmptyTitle) {
		t.Errorf("empty board copy = %q", emptyText)
	}
	if !strings.Contains(noMatchText, EmptySearchTitle) || !strings.Contains(noMatchText, EmptySearchHint) {
		t.Errorf("no-match copy = %q", noMatchText)
	}
	if emptyText == noMatchText {
		t.Error("empty board and empty search share copy")
	}
	if len(empty.Find(view.ByID("noticesGrid"))) != 0 {
		t.Error("grid rendered for empty board")
	}
	if got := find(t, empty, "totalNotices").TextContent(); got != "0" {
		t.Errorf("count = %q, want 0", got)
	}
}

func TestFormPresentation(t *testing.T) {
	create := Page(State{}, PageOptions{})
	if got := find(t, create, "formTitle").TextContent(); got != FormTitleCreate {
		t.Errorf("create heading = %q", got)
	}
	if got := find(t, create, "submitBtn").TextContent(); got != SubmitLabelCreate {
		t.Errorf("create label = %q", got)
	}
	if len(create.Find(view.ByID("cancelBtn"))) != 0 {
		t.Error("cancel visible in create mode")
	}

	edit := Page(State{Mode: ModeEdit, EditingID: 3, Form: Form{Title: "T <1>", Description: "D"}}, PageOptions{})
	if got := find(t, edit, "formTitle").TextContent(); got != FormTitleEdit {
		t.Errorf("edit heading = %q", got)
	}
	if got := find(t, edit, "submitBtn").TextContent(); got != SubmitLabelEdit {
		t.Errorf("edit label = %q", got)
	}
	find(t, edit, "cancelBtn")
	if v, _ := find(t, edit, "noticeTitle").Attr("value"); v != "T <1>" {
		t.Errorf("title value = %q", v)
	}
	if got := find(t, edit, "noticeDescription").TextContent(); got != "D" {
		t.Errorf("description = %q", got)
	}
	if out := view.String(edit); !strings.Contains(out, `value="T &lt;1&gt;"`) {
		t.Error("form value not escaped")
	}
}

func TestSearchBarClearAffordance(t *testing.T) {
	if len(Page(State{}, PageOptions{}).Find(view.ByID("clearSearch"))) != 0 {
		t.Error("clear shown without a search term")
	}
	page := Page(State{Search: "power"}, PageOptions{})
	find(t, page, "clearSearch")
	if v, _ := find(t, page, "searchInput").Attr("value"); v != "power" {
		t.Errorf("search value = %q", v)
	}
}

func TestRefreshLoadingClass(t *testing.T) {
	btn := find(t, Page(State{Refreshing: true}, PageOptions{}), "refreshBtn")
	if !btn.HasClass("loading") {
		t.Error("refresh button should carry the loading class")
	}
	if find(t, Page(State{}, PageOptions{}), "refreshBtn").HasClass("loading") {
		t.Error("idle refresh button carries the loading class")
	}
}

func TestToastView(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	toast := &Toast{Message: MsgDeleted, Kind: ToastSuccess, ShownAt: now}

	shown := ToastView(toast, now.Add(time.Second))
	if !shown.HasClass("show") || !shown.HasClass("success") {
		t.Errorf("visible toast classes: %v", shown.Attrs)
	}
	if got := find(t, shown, "toastIcon").TextContent(); got != "✓" {
		t.Errorf("icon = %q", got)
	}
	if style, _ := shown.Attr("style"); !strings.Contains(style, "2000ms") {
		t.Errorf("style = %q, want remaining 2000ms", style)
	}

	hidden := ToastView(toast, now.Add(ToastDuration))
	if hidden.HasClass("show") || len(hidden.Children) != 0 {
		t.Error("expired toast still rendered")
	}
	if ToastView(nil, now).HasClass("show") {
		t.Error("nil toast rendered as shown")
	}

	failed := ToastView(&Toast{Message: MsgSaveFailed, Kind: ToastError, ShownAt: now}, now)
	if !failed.HasClass("error") || find(t, failed, "toastIcon").TextContent() != "✕" {
		t.Error("error toast should use the error class and icon")
	}
}

func TestConfirmDialog(t *testing.T) {
	id := uint(9)
	page := Page(State{}, PageOptions{ConfirmDelete: &id})
	dialog := find(t, page, "confirmDelete")
	form := dialog.Find(func(el *view.Element) bool { return el.Tag == "form" })[0]
	if action, _ := form.Attr("action"); action != "/delete/9" {
		t.Errorf("confirm action = %q", action)
	}
	if !strings.Contains(dialog.TextContent(), DeleteConfirmText) {
		t.Errorf("dialog text = %q", dialog.TextContent())
	}
	if len(Page(State{}, PageOptions{}).Find(view.ByID("confirmDelete"))) != 0 {
		t.Error("dialog rendered without a pending delete")
	}
}

func TestPageAddsTokenToPostForms(t *testing.T) {
	id := uint(4)
	s := State{Notices: []webapi.Notice{{ID: 4, Title: "A", Description: "a"}}, Total: 1}
	page := Page(s, PageOptions{Token: "tok<en>", ConfirmDelete: &id})
	forms := page.Find(postForm)
	if len(forms) != 4 {
		t.Fatalf("found %d post forms, want refresh, notice, edit and confirm", len(forms))
	}
	for _, form := range forms {
		inputs := form.Find(func(el *view.Element) bool {
			name, _ := el.Attr("name")
			return el.Tag == "input" && name == TokenField
		})
		if len(inputs) != 1 {
			t.Errorf("form %v carries %d token inputs", form.Attrs, len(inputs))
			continue
		}
		if v, _ := inputs[0].Attr("value"); v != "tok<en>" {
			t.Errorf("token = %q", v)
		}
	}
	if !strings.Contains(view.String(page), `value="tok&lt;en&gt;"`) {
		t.Error("token not escaped")
	}
	if len(Page(s, PageOptions{}).Find(func(el *view.Element) bool {
		name, _ := el.Attr("name")
		return name == TokenField
	})) != 0 {
		t.Error("token input rendered without a token")
	}
}
