package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"gaschecker/internal/core"
	"gaschecker/internal/http/handler"
	"gaschecker/internal/http/handler/fake"
)

var _ = Describe("GasHandler", func() {
	var (
		gh          *handler.GasHandler
		fakeService *fake.GasService
		mux         *http.ServeMux
		w           *httptest.ResponseRecorder
		req         *http.Request
	)

	BeforeEach(func() {
		fakeService = new(fake.GasService)
		fakeService.ETHPriceReturns(3210.5)
		gh = handler.NewGasHandler(zap.NewNop().Sugar(), fakeService)

		mux = http.NewServeMux()
		gh.Register(mux)
		w = httptest.NewRecorder()
	})

	JustBeforeEach(func() {
		mux.ServeHTTP(w, req)
	})

	Describe("HandleHealth", func() {
		for _, path := range []string{"/", "/api/health"} {
			When("calling "+path, func() {
				BeforeEach(func() {
					req = httptest.NewRequest("GET", path, nil)
				})

				It("should report the price", func() {
					Expect(w.Code).To(Equal(http.StatusOK))
					Expect(w.Body.String()).To(MatchJSON(`{"status":"ok","eth_price":3210.5}`))
					Expect(fakeService.ETHPriceCallCount()).To(Equal(1))
				})
			})
		}
	})

	Describe("HandleCheckGas", func() {
		When("the check succeeds", func() {
			BeforeEach(func() {
				fid := uint64(3)
				wallet := "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"
				fakeService.CheckGasReturns(core.GasResult{
					State:             core.StateSuccess,
					Success:           true,
					Username:          "dwr",
					FID:               &fid,
					PrimaryWallet:     &wallet,
					TotalTransactions: 1,
					TotalVolumeETH:    1,
					TotalGasETH:       0.01,
					TotalGasUSD:       32.1,
					ETHPrice:          3210.5,
				})
				req = httptest.NewRequest("GET", "/api/gas?username=@DWR", nil)
			})

			It("should return the result", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Header().Get("Content-Type")).To(Equal("application/json"))
				Expect(w.Body.String()).To(MatchJSON(`{
					"success": true,
					"username": "dwr",
					"fid": 3,
					"display_name": null,
					"pfp_url": null,
					"primary_wallet": "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
					"total_transactions": 1,
					"total_volume_eth": 1,
					"total_gas_eth": 0.01,
					"total_gas_usd": 32.1,
					"eth_price": 3210.5,
					"error": null
				}`))

				Expect(fakeService.CheckGasCallCount()).To(Equal(1))
				_, username := fakeService.CheckGasArgsForCall(0)
				Expect(username).To(Equal("@DWR"))
			})
		})

		When("the user is not found", func() {
			BeforeEach(func() {
				msg := core.ErrMsgFIDNotFound
				fakeService.CheckGasReturns(core.GasResult{
					State:    core.StateFIDNotFound,
					Username: "ghost",
					ETHPrice: 3500,
					Error:    &msg,
				})
				req = httptest.NewRequest("GET", "/api/gas?username=ghost", nil)
			})

			It("should still answer 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var body map[string]any
				Expect(json.Unmarshal(w.Body.Bytes(), &body)).To(Succeed())
				Expect(body["success"]).To(BeFalse())
				Expect(body["error"]).To(Equal(core.ErrMsgFIDNotFound))
				Expect(body["total_gas_usd"]).To(BeNumerically("==", 0))
				Expect(body).NotTo(HaveKey("wallets"))
			})
		})

		When("the username is missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/gas?username=%20", nil)
			})

			It("should return 400 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				var resp handler.Response
				Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
				Expect(resp.Message).To(Equal("Gas check failed"))
				Expect(resp.Error).To(ContainSubstring("validate request"))
				Expect(fakeService.CheckGasCallCount()).To(Equal(0))
			})
		})

		When("the method is not GET", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/api/gas?username=dwr", nil)
			})

			It("should be rejected by the router", func() {
				Expect(w.Code).To(Equal(http.StatusMethodNotAllowed))
				Expect(fakeService.CheckGasCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleQuickCheck", func() {
		When("the wallet resolves", func() {
			BeforeEach(func() {
				wallet := "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"
				fakeService.QuickCheckReturns(core.QuickResult{
					State:         core.StateSuccess,
					Success:       true,
					Username:      "dwr",
					PrimaryWallet: &wallet,
					Wallets: []core.WalletInfo{
						{Address: wallet, IsPrimary: true},
					},
				})
				req = httptest.NewRequest("GET", "/api/quick?username=dwr", nil)
			})

			It("should return the wallets", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var body map[string]any
				Expect(json.Unmarshal(w.Body.Bytes(), &body)).To(Succeed())
				Expect(body["primary_wallet"]).To(Equal("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"))
				Expect(body["wallets"]).To(HaveLen(1))
				Expect(body).NotTo(HaveKey("total_gas_usd"))
				Expect(fakeService.CheckGasCallCount()).To(Equal(0))
			})
		})

		When("the username is missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/quick", nil)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.QuickCheckCallCount()).To(Equal(0))
			})
		})
	})
})
