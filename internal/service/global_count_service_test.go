package service

import (
	"context"
	"errors"
	"testing"

	"covid-hospital-backend/internal/repository/memory"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGlobalCountService(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty store", t, func() {
		repo := memory.NewGlobalCountRepository()
		svc := NewGlobalCountService(repo, 10)

		Convey("GetLatestCount returns an empty list", func() {
			counts, err := svc.GetLatestCount(ctx)
			So(err, ShouldBeNil)
			So(counts, ShouldBeEmpty)
		})

		Convey("GetByID fails for an unknown id", func() {
			_, err := svc.GetByID(ctx, "missing")
			So(err, ShouldNotBeNil)
		})

		Convey("Update fails for an unknown id", func() {
			_, err := svc.Update(ctx, "missing", 3)
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given 25 counts created in order", t, func() {
		repo := memory.NewGlobalCountRepository()
		svc := NewGlobalCountService(repo, 10)
		var ids []string
		for i := int64(1); i <= 25; i++ {
			c, err := svc.Create(ctx, i*100)
			So(err, ShouldBeNil)
			ids = append(ids, c.ID)
		}

		Convey("GetLatestCount returns the last one", func() {
			counts, err := svc.GetLatestCount(ctx)
			So(err, ShouldBeNil)
			So(counts, ShouldHaveLength, 1)
			So(counts[0].ID, ShouldEqual, ids[24])
		})

		Convey("page 2 of size 10 holds records 11 to 20", func() {
			page, err := svc.GetCountsWithPagination(ctx, "2", "10")
			So(err, ShouldBeNil)
			So(page.Docs, ShouldHaveLength, 10)
			So(page.Docs[0].Count, ShouldEqual, 1100)
			So(page.Docs[9].Count, ShouldEqual, 2000)
			So(page.TotalDocs, ShouldEqual, 25)
			So(page.TotalPages, ShouldEqual, 3)
		})

		Convey("invalid paging values use the defaults", func() {
			page, err := svc.GetCountsWithPagination(ctx, "abc", "-1")
			So(err, ShouldBeNil)
			So(page.Page, ShouldEqual, 1)
			So(page.Size, ShouldEqual, 10)
			So(page.Docs[0].Count, ShouldEqual, 100)
		})

		Convey("the last page is partial", func() {
			page, err := svc.GetCountsWithPagination(ctx, "3", "")
			So(err, ShouldBeNil)
			So(page.Docs, ShouldHaveLength, 5)
		})

		Convey("Update changes the value and round-trips", func() {
			_, err := svc.Update(ctx, ids[3], 42)
			So(err, ShouldBeNil)
			got, err := svc.GetByID(ctx, ids[3])
			So(err, ShouldBeNil)
			So(got.Count, ShouldEqual, 42)
		})
	})

	Convey("Given a failing store", t, func() {
		repo := memory.NewGlobalCountRepository()
		repo.Err = errors.New("timeout")
		svc := NewGlobalCountService(repo, 10)

		_, err := svc.GetLatestCount(ctx)
		So(err, ShouldNotBeNil)
		_, err = svc.GetCountsWithPagination(ctx, "1", "10")
		So(err, ShouldNotBeNil)
	})
}
