package client

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/EkeminiThompson/ecommerce/models"
)

// ListState is the lifecycle of a product-list view: it starts loading and
// settles on loaded or errored until the view is remounted.
type ListState int

const (
	ListLoading ListState = iota
	ListLoaded
	ListErrored
)

// ProductLister is the slice of the API the list view needs.
type ProductLister interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
}

// ProductListView holds the async-fetch state for one mounted catalog view.
// Closing the view stands in for unmounting: a fetch that completes after
// Close discards its result instead of touching the state.
type ProductListView struct {
	mu       sync.Mutex
	state    ListState
	products []models.Product
	errMsg   string
	closed   bool
}

func NewProductListView() *ProductListView {
	return &ProductListView{state: ListLoading}
}

// Load fetches the catalog and resolves the view. The first resolution
// wins; later calls and post-Close completions are no-ops.
func (v *ProductListView) Load(ctx context.Context, api ProductLister) {
	products, err := api.ListProducts(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed || v.state != ListLoading || ctx.Err() != nil {
		return
	}
	if err != nil {
		v.state = ListErrored
		v.errMsg = err.Error()
		return
	}
	v.state = ListLoaded
	v.products = products
}

// Close marks the view unmounted.
func (v *ProductListView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
}

func (v *ProductListView) State() ListState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *ProductListView) Products() []models.Product {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.products
}

func (v *ProductListView) Err() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.errMsg
}

// OrderCreateState is the lifecycle of a checkout submission.
type OrderCreateState int

const (
	OrderCreateIdle OrderCreateState = iota
	OrderCreatePending
	OrderCreateSucceeded
	OrderCreateFailed
)

// OrderCreator is the slice of the API the checkout view needs.
type OrderCreator interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (models.Order, error)
}

// OrderCreateView tracks one order submission: pending, then success with
// the created order or failure with a message. Reset clears the state
// without any server call, readying the view for the next checkout.
type OrderCreateView struct {
	mu     sync.Mutex
	state  OrderCreateState
	order  models.Order
	errMsg string
}

func NewOrderCreateView() *OrderCreateView {
	return &OrderCreateView{state: OrderCreateIdle}
}

// Submit places the order and resolves the view.
func (v *OrderCreateView) Submit(ctx context.Context, api OrderCreator, input CreateOrderInput) {
	v.mu.Lock()
	if v.state == OrderCreatePending {
		v.mu.Unlock()
		return
	}
	v.state = OrderCreatePending
	v.mu.Unlock()

	order, err := api.CreateOrder(ctx, input)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.state = OrderCreateFailed
		v.errMsg = err.Error()
		return
	}
	v.state = OrderCreateSucceeded
	v.order = order
}

// Reset returns the view to idle. No server call is made; the order that
// was created stays created.
func (v *OrderCreateView) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = OrderCreateIdle
	v.order = models.Order{}
	v.errMsg = ""
}

func (v *OrderCreateView) State() OrderCreateState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *OrderCreateView) Order() models.Order {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.order
}

func (v *OrderCreateView) Err() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.errMsg
}

// ImageState is the lifecycle of one product image.
type ImageState int

const (
	ImageUnloaded ImageState = iota
	ImageLoaded
	ImageRetrying
	ImageExhausted
)

const maxImageRetries = 3

// FallbackPool is the fixed set of placeholder clothing images swapped in
// when a product image fails to load.
var FallbackPool = []string{
	"https://image.made-in-china.com/2f0j00gKOWlrVaghoz/OEM-Women-s-Suit-Business-Fashion-Ol-Femininity-Beauty-Salon-Work-Clothes.webp",
	"https://lh3.googleusercontent.com/proxy/1PhcT-loM4wvdWxGzzrffStjA03O7wgqqDuNaRQ_JOhDJvLNYFbW9MwUrAcKG5v6IBFhkT02uiIGFMorNn_YKCKlyg2RdaXgfDENxZERFdZXDWz3TG3YOVw1SJiJ42-y4JcqN11NUzJoktXdpFaIjDtI2FNRDAyZ5yxB0pc4krVoRASo6CA4nJ-ym6W6V9c0LIJNNeoUxzpDwK_v0G0ZX6vSua1QhiRpJnoNQFKi6tYilgWC2NbPuoPIsQKVU4XK7MJWmhzbNOdreJaAvebUYJO5W8RXpAXAIAXgeg",
	"https://i.pinimg.com/736x/89/9e/81/899e810c82fca8ad12fe60a31790132d.jpg",
	"https://www.instyle.com/thmb/DbZ3LYMaQh85P9rZtC6jqOkAUs=/1500x0/filters:no_upscale():max_bytes(150000):strip_icc()/GettyImages-1464932922-07bdecc7f9354e91932caaaf4d21afe7.jpg",
	"https://i.pinimg.com/736x/15/ee/21/15ee21005a300a180aa81d3f99056831.jpg",
}

// ImageView is the bounded fallback-retry machine for one product image:
// a load error while fewer than three retries have been spent swaps in a
// random pool image; the third exhausts the view and the last attempted
// source stays in place. This swaps the source, it does not retry the
// network request.
type ImageView struct {
	src     string
	retries int
	state   ImageState
	pool    []string
	pick    func(n int) int
}

// NewImageView starts an image view for src. An empty src starts from a
// random pool image, the way a product without an image renders. pick may
// be nil, in which case math/rand chooses the fallback.
func NewImageView(src string, pool []string, pick func(n int) int) *ImageView {
	if len(pool) == 0 {
		pool = FallbackPool
	}
	if pick == nil {
		pick = rand.Intn
	}
	v := &ImageView{src: src, pool: pool, pick: pick}
	if v.src == "" {
		v.src = pool[pick(len(pool))]
	}
	return v
}

// OnLoad records a successful load. Loaded is terminal: later error events
// trigger no further swaps.
func (v *ImageView) OnLoad() {
	if v.state == ImageUnloaded || v.state == ImageRetrying {
		v.state = ImageLoaded
	}
}

// OnError handles a failed load by swapping in a fallback. The third
// failure spends the last retry: the view becomes exhausted, the last
// attempted source stays in place and later errors are ignored.
func (v *ImageView) OnError() {
	if v.state == ImageLoaded || v.state == ImageExhausted {
		return
	}
	v.retries++
	v.src = v.pool[v.pick(len(v.pool))]
	if v.retries >= maxImageRetries {
		v.state = ImageExhausted
		return
	}
	v.state = ImageRetrying
}

func (v *ImageView) Src() string       { return v.src }
func (v *ImageView) State() ImageState { return v.state }
func (v *ImageView) Retries() int      { return v.retries }

// bannerTTL is how long a feedback banner stays visible before expiring on
// its own.
const bannerTTL = 5 * time.Second

// Banner is a dismissible, auto-expiring feedback message.
type Banner struct {
	Text      string
	Variant   string
	shownAt   time.Time
	dismissed bool
}

func NewBanner(text, variant string, now time.Time) *Banner {
	return &Banner{Text: text, Variant: variant, shownAt: now}
}

// Active reports whether the banner should still render at now.
func (b *Banner) Active(now time.Time) bool {
	return !b.dismissed && now.Sub(b.shownAt) < bannerTTL
}

func (b *Banner) Dismiss() {
	b.dismissed = true
}
