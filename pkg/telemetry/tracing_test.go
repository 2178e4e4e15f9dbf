package telemetry_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.opentelemetry.io/otel"

	"gaschecker/pkg/telemetry"
)

var _ = Describe("InitTracer", func() {
	When("no endpoint is configured", func() {
		It("should install a no-op provider", func() {
			shutdown, err := telemetry.InitTracer(context.Background(), "test", " ")
			Expect(err).NotTo(HaveOccurred())

			_, span := otel.Tracer("test").Start(context.Background(), "span")
			Expect(span.SpanContext().IsValid()).To(BeFalse())
			span.End()

			Expect(shutdown(context.Background())).To(Succeed())
		})
	})
})
