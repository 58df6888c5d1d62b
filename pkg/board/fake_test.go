package board

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iyouport-org/noticeboard/pkg/webapi"
)

var errServer = errors.New("unexpected status 500")

// fakeAPI is an in-memory notices resource that records every call.
type fakeAPI struct {
	notices    []webapi.Notice
	nextID     uint
	calls      []string
	failList   bool
	failGet    bool
	failCreate bool
	failUpdate bool
	failDelete bool
}

func newFakeAPI(notices ...webapi.Notice) *fakeAPI {
	api := &fakeAPI{nextID: 1}
	for _, n := range notices {
		api.notices = append(api.notices, n)
		if n.ID >= api.nextID {
			api.nextID = n.ID + 1
		}
	}
	return api
}

func (api *fakeAPI) List(ctx context.Context) ([]webapi.Notice, error) {
	api.calls = append(api.calls, "GET /notices")
	if api.failList {
		return nil, errServer
	}
	return append([]webapi.Notice(nil), api.notices...), nil
}

func (api *fakeAPI) Get(ctx context.Context, id uint) (webapi.Notice, error) {
	api.calls = append(api.calls, fmt.Sprintf("GET /notices/%d", id))
	if api.failGet {
		return webapi.Notice{}, errServer
	}
	for _, n := range api.notices {
		if n.ID == id {
			return n, nil
		}
	}
	return webapi.Notice{}, errors.New("unexpected status 404")
}

func (api *fakeAPI) Create(ctx context.Context, req webapi.NoticeRequest) (webapi.Notice, error) {
	api.calls = append(api.calls, "POST /notices")
	if api.failCreate {
		return webapi.Notice{}, errServer
	}
	n := webapi.Notice{ID: api.nextID, Title: req.Title, Description: req.Description}
	api.nextID++
	api.notices = append(api.notices, n)
	return n, nil
}

func (api *fakeAPI) Update(ctx context.Context, id uint, req webapi.NoticeRequest) (webapi.Notice, error) {
	api.calls = append(api.calls, fmt.Sprintf("PUT /notices/%d", id))
	if api.failUpdate {
		return webapi.Notice{}, errServer
	}
	for i, n := range api.notices {
		if n.ID == id {
			api.notices[i] = webapi.Notice{ID: id, Title: req.Title, Description: req.Description}
			return api.notices[i], nil
		}
	}
	return webapi.Notice{}, errors.New("unexpected status 404")
}

func (api *fakeAPI) Delete(ctx context.Context, id uint) error {
	api.calls = append(api.calls, fmt.Sprintf("DELETE /notices/%d", id))
	if api.failDelete {
		return errServer
	}
	for i, n := range api.notices {
		if n.ID == id {
			api.notices = append(api.notices[:i], api.notices[i+1:]...)
			return nil
		}
	}
	return errors.New("unexpected status 404")
}

func (api *fakeAPI) resetCalls() {
	api.calls = nil
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// blockingAPI holds List until release is closed.
type blockingAPI struct {
	*fakeAPI
	started chan struct{}
	release chan struct{}
}

func newBlockingAPI(api *fakeAPI) *blockingAPI {
	return &blockingAPI{
		fakeAPI: api,
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (api *blockingAPI) List(ctx context.Context) ([]webapi.Notice, error) {
	close(api.started)
	<-api.release
	return api.fakeAPI.List(ctx)
}
