package explorer_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"gaschecker/internal/explorer"
	"gaschecker/internal/upstream"
)

var _ = Describe("Etherscan", func() {
	var (
		server  *httptest.Server
		body    string
		lastReq *http.Request
		client  *explorer.Etherscan
		txs     []explorer.Transaction
		err     error
	)

	BeforeEach(func() {
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lastReq = r
			_, _ = w.Write([]byte(body))
		}))
		client = explorer.NewEtherscan(explorer.Config{URL: server.URL, APIKey: "key"})
	})

	AfterEach(func() {
		server.Close()
	})

	JustBeforeEach(func() {
		txs, err = client.TransactionList(context.Background(), "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	})

	When("the account has transactions", func() {
		BeforeEach(func() {
			body = `{"status":"1","message":"OK","result":[
				{"hash":"0x01","input":"0x1fff991f","value":"1000000000000000000","isError":"0"},
				{"hash":"0x02","input":"0x","value":"0","isError":"0"}
			]}`
		})

		It("should decode them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(txs).To(HaveLen(2))
			Expect(txs[0].Input).To(Equal("0x1fff991f"))
			Expect(txs[0].Value).To(Equal("1000000000000000000"))
		})

		It("should request one ascending page of the configured chain", func() {
			q := lastReq.URL.Query()
			Expect(q.Get("chainid")).To(Equal("8453"))
			Expect(q.Get("module")).To(Equal("account"))
			Expect(q.Get("action")).To(Equal("txlist"))
			Expect(q.Get("address")).To(Equal("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"))
			Expect(q.Get("startblock")).To(Equal("0"))
			Expect(q.Get("endblock")).To(Equal("99999999"))
			Expect(q.Get("page")).To(Equal("1"))
			Expect(q.Get("offset")).To(Equal("10000"))
			Expect(q.Get("sort")).To(Equal("asc"))
			Expect(q.Get("apikey")).To(Equal("key"))
		})
	})

	When("the page size is configured", func() {
		BeforeEach(func() {
			client = explorer.NewEtherscan(explorer.Config{URL: server.URL, ChainID: 1, PageSize: 50})
			body = `{"status":"1","message":"OK","result":[]}`
		})

		It("should use it", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(lastReq.URL.Query().Get("offset")).To(Equal("50"))
			Expect(lastReq.URL.Query().Get("chainid")).To(Equal("1"))
		})
	})

	When("the account is empty", func() {
		BeforeEach(func() {
			body = `{"status":"0","message":"No transactions found","result":[]}`
		})

		It("should report not found", func() {
			Expect(err).To(MatchError(explorer.ErrNoTransactions))
			Expect(upstream.IsNotFound(err)).To(BeTrue())
		})
	})

	When("the explorer rejects the request", func() {
		BeforeEach(func() {
			body = `{"status":"0","message":"NOTOK","result":"Invalid API Key"}`
		})

		It("should fail with the explorer message", func() {
			Expect(err).To(HaveOccurred())
			Expect(upstream.IsNotFound(err)).To(BeFalse())
			Expect(err.Error()).To(ContainSubstring("Invalid API Key"))
		})
	})
})
