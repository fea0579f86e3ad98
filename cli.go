package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/LeHPhuc/SecondHandMarketApp/api"
	"github.com/LeHPhuc/SecondHandMarketApp/auth"
	"github.com/LeHPhuc/SecondHandMarketApp/checkout"
	"github.com/LeHPhuc/SecondHandMarketApp/config"
	"github.com/LeHPhuc/SecondHandMarketApp/models"
	"github.com/LeHPhuc/SecondHandMarketApp/payment"
	"github.com/LeHPhuc/SecondHandMarketApp/screens"
	"github.com/LeHPhuc/SecondHandMarketApp/session"
)

// App wires the screens to the terminal. Each command runs under a context
// that is cancelled on Ctrl-C, so leaving a screen aborts its in-flight
// requests.
type App struct {
	cfg     *config.Config
	log     *zap.Logger
	session *session.Session
	factory *api.Factory
	auth    *auth.Service
	payment *payment.Flow

	home    *screens.HomeScreen
	cart    *screens.CartScreen
	orders  *screens.OrdersScreen
	store   *screens.StoreScreen
	profile *screens.ProfileScreen

	in *bufio.Scanner
}

var errNeedLogin = errors.New("bạn cần đăng nhập để dùng chức năng này")

func (a *App) Run(cmd string, args []string) error {
	a.in = bufio.NewScanner(os.Stdin)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := a.dispatch(ctx, cmd, args)
	if api.IsAuthExpired(err) {
		// One place handles credential expiry for every screen.
		_ = a.session.Logout()
		return errors.New("phiên đăng nhập hết hạn, vui lòng đăng nhập lại")
	}
	return err
}

func (a *App) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		return a.runLogin(ctx)
	case "logout":
		if err := a.auth.SignOut(); err != nil {
			return err
		}
		fmt.Println("Đã đăng xuất.")
		return nil
	case "register":
		return a.runRegister(ctx)
	case "forgot-password":
		if len(args) != 1 {
			return errors.New("usage: forgot-password <email>")
		}
		if err := a.auth.ForgotPassword(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println("Đã gửi email đặt lại mật khẩu.")
		return nil
	case "products":
		return a.runProducts(ctx, strings.Join(args, " "))
	case "product":
		if len(args) != 1 {
			return errors.New("usage: product <id>")
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("mã sản phẩm không hợp lệ: %s", args[0])
		}
		return a.showProduct(ctx, id)
	case "cart":
		return a.withLogin(func() error { return a.runCart(ctx) })
	case "checkout":
		return a.withLogin(func() error { return a.runCheckout(ctx) })
	case "orders":
		return a.withLogin(func() error { return a.runOrders(ctx) })
	case "profile":
		return a.withLogin(func() error { return a.runProfile(ctx) })
	case "addresses":
		return a.withLogin(func() error { return a.runAddresses(ctx) })
	case "my-store":
		return a.withLogin(func() error { return a.runMyStore(ctx) })
	case "store-orders":
		return a.withLogin(func() error { return a.runStoreOrders(ctx) })
	case "store-export":
		if len(args) != 1 {
			return errors.New("usage: store-export <file.xlsx>")
		}
		return a.withLogin(func() error { return a.runStoreExport(ctx, args[0]) })
	default:
		return fmt.Errorf("không có lệnh %q", cmd)
	}
}

func (a *App) withLogin(fn func() error) error {
	if !a.session.Authenticated() {
		return errNeedLogin
	}
	return fn()
}

func (a *App) prompt(label string) string {
	fmt.Print(label)
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *App) promptInt(label string) (int, bool) {
	n, err := strconv.Atoi(a.prompt(label))
	return n, err == nil
}

func (a *App) confirm(label string) bool {
	ans := strings.ToLower(a.prompt(label + " [y/N] "))
	return ans == "y" || ans == "yes"
}

// --- account ---

func (a *App) runLogin(ctx context.Context) error {
	email := a.prompt("Email: ")
	password := a.prompt("Mật khẩu: ")

	user, err := a.auth.SignIn(ctx, email, password)
	if errors.Is(err, auth.ErrEmailNotVerified) {
		fmt.Println("Email chưa được xác minh.")
		if a.confirm("Gửi lại email xác minh?") {
			if err := a.auth.ResendVerification(ctx, email, password); err != nil {
				return err
			}
			fmt.Println("Đã gửi lại email xác minh.")
		}
		return nil
	}
	if err != nil {
		var ae *auth.AuthError
		if errors.As(err, &ae) {
			return errors.New(ae.Message)
		}
		return err
	}
	fmt.Printf("Xin chào %s!\n", user.FullName())
	return nil
}

func (a *App) runRegister(ctx context.Context) error {
	email := a.prompt("Email: ")
	password := a.prompt("Mật khẩu: ")

	if err := a.auth.Register(ctx, email, password); err != nil {
		var ae *auth.AuthError
		if errors.As(err, &ae) {
			return errors.New(ae.Message)
		}
		return err
	}
	fmt.Println("Đã gửi email xác minh. Hãy nhấp vào liên kết trong email, sau đó quay lại đây.")
	if !a.confirm("Đã xác minh email?") {
		return nil
	}

	reg := auth.Registration{
		Email:       email,
		Password:    password,
		LastName:    a.prompt("Họ: "),
		FirstName:   a.prompt("Tên: "),
		PhoneNumber: a.prompt("Số điện thoại: "),
	}
	if path := a.prompt("Ảnh đại diện (đường dẫn, bỏ trống để bỏ qua): "); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		reg.Avatar = f
		reg.AvatarName = f.Name()
	}

	user, err := a.auth.CompleteRegistration(ctx, reg)
	if err != nil {
		return err
	}
	fmt.Printf("Chào mừng %s!\n", user.FullName())
	return nil
}

func (a *App) runProfile(ctx context.Context) error {
	user, err := a.profile.Refresh(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n  Email: %s\n  SĐT: %s\n", user.FullName(), user.Email, user.PhoneNumber)
	if !a.confirm("Cập nhật thông tin?") {
		return nil
	}
	in := screens.ProfileInput{
		LastName:    a.prompt("Họ [" + user.LastName + "]: "),
		FirstName:   a.prompt("Tên [" + user.FirstName + "]: "),
		PhoneNumber: a.prompt("SĐT [" + user.PhoneNumber + "]: "),
	}
	if in.LastName == "" {
		in.LastName = user.LastName
	}
	if in.FirstName == "" {
		in.FirstName = user.FirstName
	}
	if in.PhoneNumber == "" {
		in.PhoneNumber = user.PhoneNumber
	}
	if _, err := a.profile.UpdateProfile(ctx, in, nil); err != nil {
		return err
	}
	fmt.Println("Đã cập nhật.")
	return nil
}

func (a *App) runAddresses(ctx context.Context) error {
	for {
		infos, err := a.profile.DeliveryInfos(ctx)
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Println("Chưa có địa chỉ giao hàng.")
		}
		for _, d := range infos {
			fmt.Printf("  [%d] %s - %s - %s\n", d.ID, d.Name, d.PhoneNumber, d.Address)
		}
		switch a.prompt("(a)dd, (e)dit <id>, (d)elete <id>, (q)uit: ") {
		case "a":
			in := screens.DeliveryInput{
				Name:        a.prompt("Người nhận: "),
				PhoneNumber: a.prompt("SĐT: "),
				Address:     a.prompt("Địa chỉ: "),
			}
			if _, err := a.profile.AddDeliveryInfo(ctx, in); err != nil {
				fmt.Println("Lỗi:", err)
			}
		case "q", "":
			return nil
		default:
			// edit/delete take "e 3" style input
			cmdline := strings.Fields(a.in.Text())
			if len(cmdline) != 2 {
				continue
			}
			id, err := strconv.Atoi(cmdline[1])
			if err != nil {
				continue
			}
			switch cmdline[0] {
			case "e":
				in := screens.DeliveryInput{
					Name:        a.prompt("Người nhận: "),
					PhoneNumber: a.prompt("SĐT: "),
					Address:     a.prompt("Địa chỉ: "),
				}
				if _, err := a.profile.UpdateDeliveryInfo(ctx, id, in); err != nil {
					fmt.Println("Lỗi:", err)
				}
			case "d":
				if err := a.profile.DeleteDeliveryInfo(ctx, id); err != nil {
					fmt.Println("Lỗi:", err)
				}
			}
		}
	}
}

// --- catalogue ---

func (a *App) runProducts(ctx context.Context, query string) error {
	if err := a.home.Search(ctx, query, 0); err != nil {
		return err
	}
	for {
		for _, p := range a.home.Products() {
			fmt.Printf("  [%d] %s - %s (còn %d, đã bán %d)\n",
				p.ID, p.Name, p.Price.Format(), p.AvailableQuantity, p.SoldQuantity)
		}
		fmt.Printf("Trang %d, tổng %d sản phẩm\n", a.home.PageNum, a.home.Total())
		switch ans := a.prompt("(n)ext, (p)rev, <id> để xem, (q)uit: "); ans {
		case "n":
			if moved, err := a.home.NextPage(ctx); err != nil {
				return err
			} else if !moved {
				fmt.Println("Đã ở trang cuối.")
			}
		case "p":
			if _, err := a.home.PrevPage(ctx); err != nil {
				return err
			}
		case "q", "":
			return nil
		default:
			if id, err := strconv.Atoi(ans); err == nil {
				if err := a.showProduct(ctx, id); err != nil {
					fmt.Println("Lỗi:", err)
				}
			}
		}
	}
}

func (a *App) showProduct(ctx context.Context, id int) error {
	p, err := a.home.Product(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n  Giá: %s\n  Cửa hàng: %s\n  Còn lại: %d\n  %s\n",
		p.Name, p.Price.Format(), p.Store.StoreName, p.AvailableQuantity, p.Description)

	comments, err := a.home.Comments(ctx, id, 1)
	if err == nil && len(comments.Results) > 0 {
		fmt.Printf("Đánh giá (%d):\n", comments.Count)
		for _, c := range comments.Results {
			fmt.Printf("  %s (%d sao): %s\n", c.User.FullName(), c.Rating, c.Content)
		}
	}

	if a.session.Authenticated() {
		if qty := a.prompt("Thêm vào giỏ (số lượng, bỏ trống để bỏ qua): "); qty != "" {
			n, err := strconv.Atoi(qty)
			if err != nil || n < 1 {
				return errors.New("số lượng không hợp lệ")
			}
			if err := a.cart.Add(ctx, id, n); err != nil {
				if msg := api.BusinessMessage(err); msg != "" {
					return errors.New(msg)
				}
				return err
			}
			fmt.Println("Đã thêm vào giỏ hàng.")
		}
	}
	return nil
}

// --- cart & checkout ---

func (a *App) printCart() {
	if a.cart.Empty() {
		fmt.Println("Giỏ hàng trống.")
		return
	}
	for _, g := range a.cart.Groups() {
		fmt.Printf("%s:\n", g.Store.StoreName)
		for _, l := range g.Products {
			mark := " "
			if a.cart.IsSelected(l.Product.ID) {
				mark = "x"
			}
			fmt.Printf("  [%s] (%d) %s x%d = %s\n",
				mark, l.Product.ID, l.Product.Name, l.Quantity, l.LineTotal().Format())
		}
	}
	fmt.Printf("Tạm tính (đã chọn): %s\n", a.cart.SelectedSubtotal().Format())
}

func (a *App) runCart(ctx context.Context) error {
	if err := a.cart.Load(ctx); err != nil {
		return err
	}
	for {
		a.printCart()
		fields := strings.Fields(a.prompt("(s)elect <id>, (S)tore <id>, (A)ll, (+/-) <id>, (r)emove, (c)heckout, (q)uit: "))
		if len(fields) == 0 {
			return nil
		}
		var err error
		switch fields[0] {
		case "q":
			return nil
		case "A":
			a.cart.SelectAll(true)
		case "r":
			err = a.cart.RemoveSelected(ctx)
		case "c":
			return a.runCheckout(ctx)
		case "s", "S", "+", "-":
			if len(fields) != 2 {
				continue
			}
			id, convErr := strconv.Atoi(fields[1])
			if convErr != nil {
				continue
			}
			switch fields[0] {
			case "s":
				a.cart.ToggleItem(id, !a.cart.IsSelected(id))
			case "S":
				a.cart.SelectStore(id, true)
			case "+":
				err = a.cart.Increase(ctx, id)
			case "-":
				err = a.cart.Decrease(ctx, id)
			}
		}
		if err != nil {
			if screens.StockConflict(err) {
				fmt.Println("Giỏ hàng đã thay đổi, đang tải lại...")
				if err := a.cart.Load(ctx); err != nil {
					return err
				}
				continue
			}
			return err
		}
	}
}

func (a *App) runCheckout(ctx context.Context) error {
	if err := a.cart.Load(ctx); err != nil {
		return err
	}
	baskets := a.cart.SelectedByStore()
	if len(baskets) == 0 {
		return errors.New("chưa chọn sản phẩm nào trong giỏ")
	}

	basket := baskets[0]
	if len(baskets) > 1 {
		fmt.Println("Mỗi đơn hàng chỉ gồm một cửa hàng. Chọn cửa hàng:")
		for i, b := range baskets {
			fmt.Printf("  [%d] %s (%d sản phẩm)\n", i+1, b.Store.StoreName, len(b.Products))
		}
		n, ok := a.promptInt("Cửa hàng số: ")
		if !ok || n < 1 || n > len(baskets) {
			return errors.New("lựa chọn không hợp lệ")
		}
		basket = baskets[n-1]
	}

	co, err := checkout.New(screens.NewOrderGateway(a.factory), a.log, basket.Products)
	if err != nil {
		return err
	}

	// Address, then the fee bound to it.
	infos, err := a.profile.DeliveryInfos(ctx)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		return errors.New("chưa có địa chỉ giao hàng, hãy thêm bằng lệnh addresses")
	}
	for _, d := range infos {
		fmt.Printf("  [%d] %s - %s\n", d.ID, d.Name, d.Address)
	}
	id, ok := a.promptInt("Giao tới địa chỉ số: ")
	if !ok {
		return errors.New("lựa chọn không hợp lệ")
	}
	co.SelectAddress(id)
	if err := co.FetchShipFee(ctx); err != nil {
		return fmt.Errorf("không tính được phí vận chuyển: %w", err)
	}

	// Voucher.
	if wallet, err := a.profile.Vouchers(ctx); err == nil {
		eligible := co.EligibleVouchers(wallet, time.Now())
		if len(eligible) > 0 {
			for _, v := range eligible {
				fmt.Printf("  [%d] %s - giảm %.0f%%\n", v.ID, v.Code, v.DiscountPercent)
			}
			if n, ok := a.promptInt("Voucher (0 để bỏ qua): "); ok && n != 0 {
				for i := range eligible {
					if eligible[i].ID == n {
						if err := co.SelectVoucher(&eligible[i], time.Now()); err != nil {
							fmt.Println("Lỗi:", err)
						}
					}
				}
			}
		}
	}

	co.SetNote(a.prompt("Ghi chú (bỏ trống nếu không có): "))

	fee, _ := co.ShipFee()
	total, _ := co.Total()
	fmt.Printf("Tạm tính: %s\nGiảm giá: %s\nPhí vận chuyển: %s\nTổng cộng: %s\n",
		co.Subtotal().Format(), co.Discount().Format(), fee.Format(), total.Format())

	method := models.PaymentCOD
	if a.confirm("Thanh toán online qua PayOS? (mặc định COD)") {
		method = models.PaymentOnline
	}
	if !a.confirm("Xác nhận đặt hàng?") {
		return nil
	}

	result, err := co.Submit(ctx, method)
	if err != nil {
		if msg := api.BusinessMessage(err); msg != "" {
			return errors.New(msg)
		}
		return err
	}
	fmt.Printf("Đã tạo đơn hàng %s.\n", result.Order.OrderCode)

	if result.Payment == nil {
		return nil
	}
	fmt.Println("Mở trang thanh toán:", result.Payment.PaymentURL)
	openBrowser(result.Payment.PaymentURL)

	outcome, err := a.payment.Await(ctx, result.Order.ID, *result.Payment)
	if errors.Is(err, payment.ErrAbandoned) {
		return errors.New("phiên thanh toán đã hết hạn")
	}
	if err != nil {
		return err
	}
	if outcome.Paid {
		fmt.Println("Thanh toán thành công!")
	} else {
		fmt.Println("Đã hủy thanh toán, đơn hàng đã được xóa.")
	}
	return nil
}

// --- orders ---

func (a *App) runOrders(ctx context.Context) error {
	if err := a.orders.LoadStatuses(ctx); err != nil {
		return err
	}
	if err := a.orders.Load(ctx); err != nil {
		return err
	}
	for {
		for _, o := range a.orders.Orders() {
			st := a.orders.StatusOf(o)
			fmt.Printf("  [%d] %s - %s - %s (%s)\n",
				o.ID, o.OrderCode, o.TotalCost.Format(), st.Label(), st.Color())
		}
		fmt.Printf("Tổng %d đơn\n", a.orders.Total())
		fields := strings.Fields(a.prompt("(t)ab <1-6|0>, (n)ext, <id> hành động, (q)uit: "))
		if len(fields) == 0 || fields[0] == "q" {
			return nil
		}
		switch fields[0] {
		case "t":
			if len(fields) == 2 {
				if n, err := strconv.Atoi(fields[1]); err == nil {
					if err := a.orders.SwitchTab(ctx, models.ParseStatus(n)); err != nil {
						return err
					}
				}
			}
		case "n":
			if _, err := a.orders.NextPage(ctx); err != nil {
				return err
			}
		default:
			id, err := strconv.Atoi(fields[0])
			if err != nil {
				continue
			}
			if err := a.orderActions(ctx, id); err != nil {
				fmt.Println("Lỗi:", err)
			}
		}
	}
}

func (a *App) orderActions(ctx context.Context, orderID int) error {
	o, err := a.orders.Order(ctx, orderID)
	if err != nil {
		return err
	}
	fmt.Printf("%s - %s\n", o.OrderCode, o.OrderStatusName)
	for _, it := range o.Items {
		fmt.Printf("  %s x%d\n", it.Product.Name, it.Quantity)
	}
	fmt.Printf("  Tạm tính %s, phí ship %s, giảm %s, tổng %s\n",
		o.Subtotal().Format(), o.ShipFee.Format(), o.Discount().Format(), o.TotalCost.Format())

	actions := a.orders.Actions(*o)
	if len(actions) == 0 {
		return nil
	}
	for i, act := range actions {
		fmt.Printf("  [%d] %s\n", i+1, act.Name)
	}
	n, ok := a.promptInt("Hành động (0 để bỏ qua): ")
	if !ok || n < 1 || n > len(actions) {
		return nil
	}
	if !a.confirm(actions[n-1].Name + "?") {
		return nil
	}
	return a.orders.RequestTransition(ctx, *o, actions[n-1].Target)
}

// --- store ---

func (a *App) runMyStore(ctx context.Context) error {
	st, err := a.store.MyStore(ctx)
	if api.IsBusiness(err) {
		fmt.Println("Bạn chưa có cửa hàng.")
		if !a.confirm("Tạo cửa hàng?") {
			return nil
		}
		in := screens.StoreInput{
			StoreName:   a.prompt("Tên cửa hàng: "),
			Description: a.prompt("Mô tả: "),
			Address:     a.prompt("Địa chỉ: "),
			PhoneNumber: a.prompt("SĐT: "),
		}
		if st, err = a.store.CreateStore(ctx, in, nil); err != nil {
			return err
		}
		fmt.Println("Đã tạo cửa hàng", st.StoreName)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s\n  %s\n  %s - %s\n", st.StoreName, st.Description, st.Address, st.PhoneNumber)
	page, err := a.store.MyProducts(ctx, 1)
	if err != nil {
		return err
	}
	fmt.Printf("Sản phẩm đang bán (%d):\n", page.Count)
	for _, p := range page.Results {
		fmt.Printf("  [%d] %s - %s (còn %d)\n", p.ID, p.Name, p.Price.Format(), p.AvailableQuantity)
	}

	switch a.prompt("(a)dd sản phẩm, (d)elete <id>, (q)uit: ") {
	case "a":
		in := screens.ProductInput{
			Name:        a.prompt("Tên: "),
			Description: a.prompt("Mô tả: "),
		}
		if price, ok := a.promptInt("Giá (VNĐ): "); ok {
			in.Price = models.VND(price)
		}
		if qty, ok := a.promptInt("Số lượng: "); ok {
			in.AvailableQuantity = qty
		}
		p, err := a.store.CreateProduct(ctx, in, nil)
		if err != nil {
			return err
		}
		fmt.Println("Đã đăng bán", p.Name)
	default:
		fields := strings.Fields(a.in.Text())
		if len(fields) == 2 && fields[0] == "d" {
			if id, err := strconv.Atoi(fields[1]); err == nil {
				if a.confirm("Gỡ sản phẩm này?") {
					return a.store.DeleteProduct(ctx, id)
				}
			}
		}
	}
	return nil
}

func (a *App) runStoreOrders(ctx context.Context) error {
	so := screens.NewStoreOrders(a.factory, a.log)
	if err := so.LoadStatuses(ctx); err != nil {
		return err
	}
	if stats, err := so.Stats(ctx); err == nil {
		for _, s := range stats {
			fmt.Printf("  %s: %d đơn\n", models.ParseStatus(s.StatusID).Label(), s.Count)
		}
	}
	if err := so.Load(ctx); err != nil {
		return err
	}
	for {
		for _, o := range so.Orders() {
			fmt.Printf("  [%d] %s - %s - %s\n", o.ID, o.OrderCode, o.TotalCost.Format(), o.OrderStatusName)
		}
		fields := strings.Fields(a.prompt("(t)ab <1-6>, (n)ext, <id> hành động, (q)uit: "))
		if len(fields) == 0 || fields[0] == "q" {
			return nil
		}
		switch fields[0] {
		case "t":
			if len(fields) == 2 {
				if n, err := strconv.Atoi(fields[1]); err == nil {
					if err := so.SwitchTab(ctx, models.ParseStatus(n)); err != nil {
						return err
					}
				}
			}
		case "n":
			if _, err := so.NextPage(ctx); err != nil {
				return err
			}
		default:
			id, err := strconv.Atoi(fields[0])
			if err != nil {
				continue
			}
			for _, o := range so.Orders() {
				if o.ID != id {
					continue
				}
				actions := so.Actions(o)
				if len(actions) == 0 {
					fmt.Println("Không có hành động cho đơn này.")
					break
				}
				for i, act := range actions {
					fmt.Printf("  [%d] %s\n", i+1, act.Name)
				}
				if n, ok := a.promptInt("Hành động: "); ok && n >= 1 && n <= len(actions) {
					if err := so.UpdateStatus(ctx, o, actions[n-1].Target); err != nil {
						fmt.Println("Lỗi:", err)
					}
				}
				break
			}
		}
	}
}

func (a *App) runStoreExport(ctx context.Context, path string) error {
	so := screens.NewStoreOrders(a.factory, a.log)
	if err := so.LoadStatuses(ctx); err != nil {
		return err
	}
	so.Tab = models.StatusUnknown // all statuses
	var all []models.Order
	if err := so.Load(ctx); err != nil {
		return err
	}
	all = append(all, so.Orders()...)
	for {
		moved, err := so.NextPage(ctx)
		if err != nil {
			return err
		}
		if !moved {
			break
		}
		all = append(all, so.Orders()...)
	}
	if err := screens.ExportOrdersToExcel(path, all, so.StatusOf); err != nil {
		return err
	}
	fmt.Printf("Đã xuất %d đơn hàng ra %s\n", len(all), path)
	return nil
}

// openBrowser best-effort opens the URL; the URL is printed anyway.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
