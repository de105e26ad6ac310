package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"covid-hospital-backend/internal/models"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGlobalCountHandler(t *testing.T) {
	Convey("Given an empty count API", t, func() {
		ts := newTestServer(nil, nil)

		Convey("GET /counts/global/latest returns an empty list", func() {
			w := ts.do(http.MethodGet, "/counts/global/latest", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldEqual, "[]")
		})

		Convey("GET /counts/global/:id for an unknown id is a 500 envelope", func() {
			w := ts.do(http.MethodGet, "/counts/global/missing", "")
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
			So(decode[map[string]any](t, w)["statusCode"], ShouldEqual, float64(500))
		})

		Convey("POST /counts/global without a count is a 500 envelope", func() {
			w := ts.do(http.MethodPost, "/counts/global", `{}`)
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
		})
	})

	Convey("Given 15 counts", t, func() {
		ts := newTestServer(nil, nil)
		var created []models.GlobalCount
		for i := 1; i <= 15; i++ {
			w := ts.do(http.MethodPost, "/counts/global", fmt.Sprintf(`{"count":%d}`, i))
			So(w.Code, ShouldEqual, http.StatusCreated)
			created = append(created, decode[models.GlobalCount](t, w))
		}

		Convey("GET /counts/global?page=2&size=10 returns the second page", func() {
			w := ts.do(http.MethodGet, "/counts/global?page=2&size=10", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			page := decode[models.Page[models.GlobalCount]](t, w)
			So(page.Docs, ShouldHaveLength, 5)
			So(page.Docs[0].Count, ShouldEqual, 11)
			So(page.Page, ShouldEqual, 2)
			So(page.TotalDocs, ShouldEqual, 15)
		})

		Convey("GET /counts/global/latest returns the newest", func() {
			w := ts.do(http.MethodGet, "/counts/global/latest", "")
			counts := decode[[]models.GlobalCount](t, w)
			So(counts, ShouldHaveLength, 1)
			So(counts[0].ID, ShouldEqual, created[14].ID)
		})

		Convey("PUT /counts/global/:id updates and GET reads it back", func() {
			w := ts.do(http.MethodPut, "/counts/global/"+created[0].ID, `{"count":999}`)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(decode[models.GlobalCount](t, w).Count, ShouldEqual, 999)

			w = ts.do(http.MethodGet, "/counts/global/"+created[0].ID, "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(decode[models.GlobalCount](t, w).Count, ShouldEqual, 999)
		})

		Convey("a failing store yields the envelope", func() {
			ts.counts.Err = errStore
			w := ts.do(http.MethodGet, "/counts/global?page=1", "")
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
			So(decode[map[string]any](t, w), ShouldResemble, map[string]any{
				"statusCode":  float64(500),
				"description": "storage offline",
			})
		})
	})
}
