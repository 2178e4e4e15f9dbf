package price_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"gaschecker/internal/price"
	"gaschecker/internal/upstream"
)

var _ = Describe("CoinGecko", func() {
	var (
		server  *httptest.Server
		status  int
		body    string
		lastReq *http.Request
		usd     float64
		err     error
	)

	BeforeEach(func() {
		status = http.StatusOK
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lastReq = r
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))
	})

	AfterEach(func() {
		server.Close()
	})

	JustBeforeEach(func() {
		usd, err = price.NewCoinGecko(server.URL).ETHPrice(context.Background())
	})

	When("the price is available", func() {
		BeforeEach(func() {
			body = `{"ethereum":{"usd":3123.45}}`
		})

		It("should return it", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(usd).To(Equal(3123.45))
			Expect(lastReq.URL.Path).To(Equal("/api/v3/simple/price"))
			Expect(lastReq.URL.Query().Get("ids")).To(Equal("ethereum"))
			Expect(lastReq.URL.Query().Get("vs_currencies")).To(Equal("usd"))
		})
	})

	When("the price is missing", func() {
		BeforeEach(func() {
			body = `{"ethereum":{}}`
		})

		It("should fail", func() {
			Expect(err).To(MatchError(price.ErrMissingUSDPrice))
		})
	})

	When("the price is not positive", func() {
		BeforeEach(func() {
			body = `{"ethereum":{"usd":0}}`
		})

		It("should fail", func() {
			Expect(err).To(MatchError(price.ErrMissingUSDPrice))
		})
	})

	When("the service is rate limited", func() {
		BeforeEach(func() {
			status = http.StatusTooManyRequests
			body = `{"status":{"error_code":429}}`
		})

		It("should fail", func() {
			Expect(err).To(MatchError(upstream.ErrUnexpectedStatus))
		})
	})
})
