package timeutil_test

import (
	"context"
	"time"

	"github.com/animalet/launchutil/pkg/timeutil"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Sleep", func() {
	It("should wait for the duration", func() {
		start := time.Now()
		Expect(timeutil.Sleep(context.Background(), 20*time.Millisecond)).To(Succeed())
		Expect(time.Since(start)).To(BeNumerically(">=", 20*time.Millisecond))
	})

	It("should return early when the context is cancelled", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		start := time.Now()
		err := timeutil.Sleep(ctx, time.Minute)
		Expect(err).To(MatchError(context.DeadlineExceeded))
		Expect(time.Since(start)).To(BeNumerically("<", 5*time.Second))
	})

	It("should not block for non-positive durations", func() {
		Expect(timeutil.Sleep(context.Background(), 0)).To(Succeed())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		Expect(timeutil.Sleep(ctx, -time.Second)).To(MatchError(context.Canceled))
	})
})

var _ = Describe("AddMinutes", func() {
	at := func(minute int) time.Time {
		return time.Date(2024, 5, 1, 10, minute, 0, 0, time.UTC)
	}

	DescribeTable("should offset the minute modulo 59",
		func(minute, n, expected int) {
			Expect(timeutil.AddMinutes(n, at(minute))).To(Equal(expected))
		},
		Entry("no offset", 10, 0, 10),
		Entry("forward", 10, 5, 15),
		Entry("wrap at 59", 58, 1, 0),
		Entry("minute 59 wraps to 0", 59, 0, 0),
		Entry("backward", 10, -5, 5),
		Entry("backward across zero", 2, -5, 56),
	)

	It("should use the UTC minute", func() {
		loc := time.FixedZone("plus-half-hour", 30*60)
		base := time.Date(2024, 5, 1, 10, 45, 0, 0, loc)
		Expect(timeutil.AddMinutes(0, base)).To(Equal(15))
	})

	It("should default to now", func() {
		m := timeutil.AddMinutes(0, time.Time{})
		Expect(m).To(BeNumerically(">=", 0))
		Expect(m).To(BeNumerically("<", 59))
	})
})
