package webapi

import "github.com/iyouport-org/noticeboard/pkg/model"

// NoticeRequest is the body of both POST /notices and PUT /notices/{id}.
type NoticeRequest struct {
	Title       string `json:"title" validate:"notblank,max=255"`
	Description string `json:"description" validate:"notblank,max=1000"`
}

type Notice struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func GetNotice(notice model.Notice) Notice {
	return Notice{
		ID:          notice.ID,
		Title:       notice.Title,
		Description: notice.Description,
	}
}

func GetNotices(notices []model.Notice) []Notice {
	ret := make([]Notice, len(notices))
	for k, v := range notices {
		ret[k] = GetNotice(v)
	}
	return ret
}
