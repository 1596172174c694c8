package routes

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Deveshkumar24/HygienaX-E-commerce-store/seed"
	"github.com/Deveshkumar24/HygienaX-E-commerce-store/store"
)

func newTestServer(t *testing.T) (*httptest.Server, *store.Memory) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemory()
	if _, err := seed.Run(st); err != nil {
		t.Fatalf("seed: %v", err)
	}

	r := New(st, []byte("test-secret"), "../templates/*.html")
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, st
}

// newClient returns an http client with its own cookie jar, i.e. its own
// browser session.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return &http.Client{Jar: jar}
}

func postForm(t *testing.T, client *http.Client, srvURL, path string, form url.Values) string {
	t.Helper()
	resp, err := client.PostForm(srvURL+path, form)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return string(body)
}

func get(t *testing.T, client *http.Client, srvURL, path string) string {
	t.Helper()
	resp, err := client.Get(srvURL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return string(body)
}

func signup(t *testing.T, client *http.Client, srvURL, name, email string) {
	t.Helper()
	postForm(t, client, srvURL, "/signup", url.Values{
		"name":     {name},
		"email":    {email},
		"password": {"s3cret-pw"},
	})
}

func submitAddress(t *testing.T, client *http.Client, srvURL string) string {
	t.Helper()
	return postForm(t, client, srvURL, "/checkout", url.Values{
		"name":          {"Devesh"},
		"phone_number":  {"9999999999"},
		"address_line1": {"12 MG Road"},
		"city":          {"Indore"},
		"state":         {"MP"},
		"pincode":       {"452001"},
	})
}

func TestGuardRedirectsToLogin(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient(t)
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	resp, err := client.Get(srv.URL + "/cart")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want 302", resp.StatusCode)
	}
	loc := resp.Header.Get("Location")
	if !strings.HasPrefix(loc, "/login?next=") || !strings.Contains(loc, "cart") {
		t.Fatalf("location = %q", loc)
	}
}

func TestSignupLogsUserIn(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient(t)

	signup(t, client, srv.URL, "Devesh", "devesh@example.com")

	body := get(t, client, srv.URL, "/")
	if !strings.Contains(body, "Logout") {
		t.Fatal("expected a logged-in navbar after signup")
	}
	if !strings.Contains(body, "Cart (0)") {
		t.Fatal("expected an empty cart badge")
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	srv, _ := newTestServer(t)
	first := newClient(t)
	signup(t, first, srv.URL, "Devesh", "devesh@example.com")

	second := newClient(t)
	body := postForm(t, second, srv.URL, "/signup", url.Values{
		"name":     {"Imposter"},
		"email":    {"devesh@example.com"},
		"password": {"other-pw"},
	})
	if !strings.Contains(body, "Email address already exists.") {
		t.Fatal("expected duplicate-email notice")
	}
}

func TestLoginFailureMessageIsUniform(t *testing.T) {
	srv, _ := newTestServer(t)
	registered := newClient(t)
	signup(t, registered, srv.URL, "Devesh", "devesh@example.com")

	const want = "Please check your login details and try again."

	wrongPassword := postForm(t, newClient(t), srv.URL, "/login", url.Values{
		"email":    {"devesh@example.com"},
		"password": {"wrong"},
	})
	unknownEmail := postForm(t, newClient(t), srv.URL, "/login", url.Values{
		"email":    {"nobody@example.com"},
		"password": {"whatever"},
	})

	if !strings.Contains(wrongPassword, want) {
		t.Error("wrong password did not surface the uniform message")
	}
	if !strings.Contains(unknownEmail, want) {
		t.Error("unknown email did not surface the uniform message")
	}
}

func TestCatalogSearchFilters(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient(t)

	body := get(t, client, srv.URL, "/?search=phenyl")
	if !strings.Contains(body, "White Phenyl (5L)") || !strings.Contains(body, "Rose Flavoured Phenyl (5L)") {
		t.Error("phenyl search should list both phenyls")
	}
	if strings.Contains(body, "Glass Cleaner (5L)") {
		t.Error("phenyl search should not list the glass cleaner")
	}
}

func TestProductDetailNotFound(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient(t)
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	resp, err := client.Get(srv.URL + "/product/999")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestCartAddAndBadge(t *testing.T) {
	srv, st := newTestServer(t)
	client := newClient(t)
	signup(t, client, srv.URL, "Devesh", "devesh@example.com")

	postForm(t, client, srv.URL, "/add_to_cart/1", nil)
	postForm(t, client, srv.URL, "/add_to_cart/1", nil)

	body := get(t, client, srv.URL, "/cart")
	if !strings.Contains(body, "White Phenyl (5L)") {
		t.Error("cart page missing the added product")
	}
	if !strings.Contains(body, "Cart (2)") {
		t.Error("cart badge should show two units")
	}

	user, err := st.UserByEmail("devesh@example.com")
	if err != nil {
		t.Fatal(err)
	}
	lines, _ := st.CartLinesForUser(user.ID)
	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Fatalf("want one line of quantity 2, got %+v", lines)
	}
}

func TestCartTamperingIsNoOp(t *testing.T) {
	srv, st := newTestServer(t)

	owner := newClient(t)
	signup(t, owner, srv.URL, "Owner", "owner@example.com")
	postForm(t, owner, srv.URL, "/add_to_cart/1", nil)

	ownerUser, _ := st.UserByEmail("owner@example.com")
	lines, _ := st.CartLinesForUser(ownerUser.ID)
	lineID := lines[0].ID

	intruder := newClient(t)
	signup(t, intruder, srv.URL, "Intruder", "intruder@example.com")
	postForm(t, intruder, srv.URL, "/remove_from_cart/1", nil)
	postForm(t, intruder, srv.URL, "/update_cart/1/increase", nil)

	lines, _ = st.CartLinesForUser(ownerUser.ID)
	if len(lines) != 1 || lines[0].ID != lineID || lines[0].Quantity != 1 {
		t.Fatalf("owner's cart was tampered with: %+v", lines)
	}
}

func TestCheckoutEmptyCartRedirectsHome(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient(t)
	signup(t, client, srv.URL, "Devesh", "devesh@example.com")

	body := get(t, client, srv.URL, "/checkout")
	if !strings.Contains(body, "Your cart is empty.") {
		t.Fatal("expected the empty-cart notice on the home page")
	}
}

func TestCheckoutMissingRequiredFields(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient(t)
	signup(t, client, srv.URL, "Devesh", "devesh@example.com")
	postForm(t, client, srv.URL, "/add_to_cart/1", nil)

	body := postForm(t, client, srv.URL, "/checkout", url.Values{
		"name":          {"Devesh"},
		"address_line1": {"12 MG Road"},
	})
	if !strings.Contains(body, "Please fill in:") {
		t.Fatal("expected a missing-fields notice")
	}
	if !strings.Contains(body, "Shipping Address") {
		t.Fatal("expected to land back on the address form")
	}
}

func TestPaymentWithoutDraftRedirects(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient(t)
	signup(t, client, srv.URL, "Devesh", "devesh@example.com")
	postForm(t, client, srv.URL, "/add_to_cart/1", nil)

	body := get(t, client, srv.URL, "/payment")
	if !strings.Contains(body, "Shipping Address") {
		t.Fatal("payment without an address should land on the address form")
	}
}

func TestFullCheckoutFlow(t *testing.T) {
	srv, st := newTestServer(t)
	client := newClient(t)
	signup(t, client, srv.URL, "Devesh", "devesh@example.com")

	// 3 x product 1 (180.00) + 2 x product 2 (240.00): quantity 5 triggers
	// the bulk offer.
	for i := 0; i < 3; i++ {
		postForm(t, client, srv.URL, "/add_to_cart/1", nil)
	}
	for i := 0; i < 2; i++ {
		postForm(t, client, srv.URL, "/add_to_cart/2", nil)
	}

	body := submitAddress(t, client, srv.URL)
	if !strings.Contains(body, "Review your order") {
		t.Fatal("expected to land on the payment page")
	}
	if !strings.Contains(body, "867.00") { // (3*180 + 2*240) * 0.85
		t.Fatalf("payment page missing the discounted total: %s", body)
	}

	body = postForm(t, client, srv.URL, "/place_order", url.Values{
		"payment_method": {"upi"},
	})
	if !strings.Contains(body, "Your order has been placed successfully!") {
		t.Fatal("expected the success notice")
	}

	user, _ := st.UserByEmail("devesh@example.com")
	lines, _ := st.CartLinesForUser(user.ID)
	if len(lines) != 0 {
		t.Fatalf("cart not emptied after checkout: %+v", lines)
	}

	orders, _ := st.OrdersForUser(user.ID)
	if len(orders) != 1 {
		t.Fatalf("want exactly one order, got %d", len(orders))
	}
	order := orders[0]
	if order.PaymentMethod != "upi" {
		t.Errorf("payment method = %q", order.PaymentMethod)
	}
	if len(order.Lines) != 2 {
		t.Fatalf("want 2 order lines, got %d", len(order.Lines))
	}

	history := get(t, client, srv.URL, "/orders")
	if !strings.Contains(history, order.OrderRef) {
		t.Error("order history missing the order reference")
	}
	if !strings.Contains(history, "867.00") {
		t.Error("order history missing the total")
	}
}

func TestPlaceOrderWithoutDraft(t *testing.T) {
	srv, st := newTestServer(t)
	client := newClient(t)
	signup(t, client, srv.URL, "Devesh", "devesh@example.com")
	postForm(t, client, srv.URL, "/add_to_cart/1", nil)

	body := postForm(t, client, srv.URL, "/place_order", nil)
	if !strings.Contains(body, "Shipping address is missing. Please try again.") {
		t.Fatal("expected the missing-address notice")
	}

	user, _ := st.UserByEmail("devesh@example.com")
	orders, _ := st.OrdersForUser(user.ID)
	if len(orders) != 0 {
		t.Fatalf("order created without an address: %+v", orders)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient(t)
	signup(t, client, srv.URL, "Devesh", "devesh@example.com")

	get(t, client, srv.URL, "/logout")

	body := get(t, client, srv.URL, "/")
	if strings.Contains(body, "Logout") {
		t.Fatal("still logged in after logout")
	}
}
