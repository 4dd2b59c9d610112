//go:build js && wasm

package main

import (
	"context"
	"strconv"
	"strings"
	"syscall/js"
	"time"

	"github.com/rlsh74/tnsystems-website/ui"
)

type action func(ui.State) ui.Update

type page struct {
	doc     js.Value
	win     js.Value
	header  js.Value
	toggle  js.Value
	menu    js.Value
	form    js.Value
	submit  js.Value
	toastEl js.Value

	state   ui.State
	actions chan action
	client  *ui.ContactClient
}

func main() {
	doc := js.Global().Get("document")
	p := &page{
		doc:     doc,
		win:     js.Global().Get("window"),
		header:  doc.Call("querySelector", ".header"),
		toggle:  doc.Call("querySelector", ".hamburger"),
		menu:    doc.Call("querySelector", ".nav-menu"),
		form:    doc.Call("getElementById", "contact-form"),
		actions: make(chan action, 64),
		client:  ui.NewContactClient("", nil),
	}
	if !p.form.IsNull() {
		p.submit = p.form.Call("querySelector", `button[type="submit"]`)
	}

	p.bind()
	p.track([]ui.Event{ui.PageLoad(
		doc.Get("title").String(),
		js.Global().Get("navigator").Get("userAgent").String(),
		time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	)})

	for a := range p.actions {
		p.apply(a(p.state))
	}
}

func (p *page) dispatch(a action) {
	select {
	case p.actions <- a:
	default:
		logError("ui: action queue full, dropping action")
	}
}

func (p *page) apply(u ui.Update) {
	p.state = u.State
	for _, t := range u.Timers {
		t := t
		time.AfterFunc(t.Delay, func() {
			p.dispatch(func(s ui.State) ui.Update { return s.NotificationTick(t.ToastID, t.Phase) })
		})
	}
	if u.ResetForm && !p.form.IsNull() {
		p.form.Call("reset")
	}
	p.track(u.Events)
	p.render()
}

func (p *page) on(target js.Value, event string, fn func(this js.Value, ev js.Value)) {
	if target.IsNull() || target.IsUndefined() {
		return
	}
	target.Call("addEventListener", event, js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		fn(this, args[0])
		return nil
	}))
}

func (p *page) bind() {
	p.on(p.toggle, "click", func(_, _ js.Value) {
		p.dispatch(func(s ui.State) ui.Update { return s.ToggleMenu() })
	})

	links := p.doc.Call("querySelectorAll", ".nav-link")
	for i := 0; i < links.Length(); i++ {
		p.on(links.Index(i), "click", func(_, _ js.Value) {
			p.dispatch(func(s ui.State) ui.Update { return s.CloseMenu() })
		})
	}

	p.on(p.doc, "click", func(_, ev js.Value) {
		target := ev.Get("target")
		onToggle := !p.toggle.IsNull() && p.toggle.Call("contains", target).Bool()
		inMenu := !p.menu.IsNull() && p.menu.Call("contains", target).Bool()
		p.dispatch(func(s ui.State) ui.Update { return s.ClickOutside(onToggle, inMenu) })
	})

	p.on(p.doc, "keydown", func(_, ev js.Value) {
		key := ev.Get("key").String()
		if key == "Tab" {
			p.trapFocus(ev)
			return
		}
		p.dispatch(func(s ui.State) ui.Update { return s.KeyDown(key) })
	})

	p.on(p.win, "scroll", func(_, _ js.Value) {
		top := p.win.Get("pageYOffset").Float()
		viewport := p.win.Get("innerHeight").Float()
		height := p.doc.Get("documentElement").Get("scrollHeight").Float()
		p.dispatch(func(s ui.State) ui.Update { return s.Scroll(top, viewport, height) })
	})

	anchors := p.doc.Call("querySelectorAll", `a[href^="#"]`)
	for i := 0; i < anchors.Length(); i++ {
		p.on(anchors.Index(i), "click", func(this, ev js.Value) {
			ev.Call("preventDefault")
			href := this.Call("getAttribute", "href").String()
			if href == "#" {
				return
			}
			target := p.doc.Call("querySelector", href)
			if target.IsNull() {
				return
			}
			headerHeight := 0
			if !p.header.IsNull() {
				headerHeight = p.header.Get("offsetHeight").Int()
			}
			top := ui.AnchorScrollTop(target.Get("offsetTop").Int(), headerHeight)
			opts := js.Global().Get("Object").New()
			opts.Set("top", top)
			opts.Set("behavior", "smooth")
			p.win.Call("scrollTo", opts)
		})
	}

	fields := p.doc.Call("querySelectorAll", "input, textarea, select")
	for i := 0; i < fields.Length(); i++ {
		field := fields.Index(i)
		name := field.Get("name").String()
		p.on(field, "focus", func(_, _ js.Value) {
			p.dispatch(func(s ui.State) ui.Update { return s.Focus(name) })
		})
		p.on(field, "blur", func(_, _ js.Value) {
			p.dispatch(func(s ui.State) ui.Update { return s.Blur(name) })
		})
	}

	p.on(p.form, "submit", func(_, ev js.Value) {
		ev.Call("preventDefault")
		data := p.readForm()
		p.dispatch(func(s ui.State) ui.Update {
			u, ok := s.SubmitRequested(data)
			if ok {
				go p.send(data)
			}
			return u
		})
	})

	p.observeSections()
}

func (p *page) send(data ui.FormData) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res, err := p.client.Submit(ctx, data)
	if err != nil {
		logError("Form submission error: " + err.Error())
	}
	p.dispatch(func(s ui.State) ui.Update { return s.SubmitFinished(data, res, err) })
}

func (p *page) readForm() ui.FormData {
	fd := js.Global().Get("FormData").New(p.form)
	get := func(name string) string {
		v := fd.Call("get", name)
		if v.IsNull() {
			return ""
		}
		return v.String()
	}
	return ui.FormData{
		Name:     get("name"),
		Email:    get("email"),
		Company:  get("company"),
		Industry: get("industry"),
		Message:  get("message"),
	}
}

func (p *page) trapFocus(ev js.Value) {
	if p.menu.IsNull() {
		return
	}
	links := p.menu.Call("querySelectorAll", "a[href]")
	active := p.doc.Get("activeElement")
	current := -1
	for i := 0; i < links.Length(); i++ {
		if links.Index(i).Equal(active) {
			current = i
			break
		}
	}
	next := ui.FocusTrap(p.state.MenuOpen, links.Length(), current, ev.Get("shiftKey").Bool())
	if next >= 0 {
		ev.Call("preventDefault")
		links.Index(next).Call("focus")
	}
}

func (p *page) observeSections() {
	observer := js.Global().Get("IntersectionObserver")
	if observer.IsUndefined() {
		return
	}
	cb := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		entries := args[0]
		for i := 0; i < entries.Length(); i++ {
			entry := entries.Index(i)
			if entry.Get("isIntersecting").Bool() {
				p.track(ui.SectionView(entry.Get("target").Get("id").String()))
			}
		}
		return nil
	})
	opts := js.Global().Get("Object").New()
	opts.Set("threshold", 0.1)
	obs := observer.New(cb, opts)

	sections := p.doc.Call("querySelectorAll", "section")
	for i := 0; i < sections.Length(); i++ {
		obs.Call("observe", sections.Index(i))
	}
}

func (p *page) render() {
	s := p.state

	setClass(p.menu, "active", s.MenuOpen)
	setClass(p.toggle, "active", s.MenuOpen)
	overflow := "auto"
	if s.BodyScrollLocked() {
		overflow = "hidden"
	}
	p.doc.Get("body").Get("style").Set("overflow", overflow)

	if !p.header.IsNull() {
		style := p.header.Get("style")
		if s.HeaderScrolled {
			style.Set("background", "rgba(255, 255, 255, 0.98)")
			style.Set("boxShadow", "0 2px 10px rgba(0, 0, 0, 0.1)")
		} else {
			style.Set("background", "rgba(255, 255, 255, 0.95)")
			style.Set("boxShadow", "none")
		}
	}

	fields := p.doc.Call("querySelectorAll", "input, textarea, select")
	for i := 0; i < fields.Length(); i++ {
		f := fields.Index(i)
		name := f.Get("name").String()
		setClass(f.Get("parentElement"), "focused", name != "" && name == s.FocusedField)
		_, bad := s.FieldErrors[name]
		setClass(f.Get("parentElement"), "has-error", bad)
	}

	if !p.submit.IsUndefined() && !p.submit.IsNull() {
		p.submit.Set("textContent", s.SubmitButtonLabel())
		p.submit.Set("disabled", s.Submitting)
	}

	p.renderToast(s.Notification)
}

func (p *page) renderToast(t *ui.Toast) {
	if t == nil {
		if !p.toastEl.IsUndefined() && !p.toastEl.IsNull() {
			p.toastEl.Call("remove")
			p.toastEl = js.Null()
		}
		return
	}

	if p.toastEl.IsUndefined() || p.toastEl.IsNull() || p.toastEl.Get("dataset").Get("id").String() != strconv.FormatUint(t.ID, 10) {
		if !p.toastEl.IsUndefined() && !p.toastEl.IsNull() {
			p.toastEl.Call("remove")
		}
		el := p.doc.Call("createElement", "div")
		el.Set("className", "notification notification-"+string(t.Kind))
		el.Get("dataset").Set("id", strconv.FormatUint(t.ID, 10))
		el.Get("style").Set("cssText", strings.Join([]string{
			"position: fixed", "top: 20px", "right: 20px",
			"background: " + t.Kind.Background(), "color: white",
			"padding: 1rem 1.5rem", "border-radius: 0.5rem",
			"box-shadow: 0 10px 15px -3px rgba(0, 0, 0, 0.1)", "z-index: 10000",
			"transition: all 0.3s ease", "max-width: 400px",
		}, "; "))

		content := p.doc.Call("createElement", "div")
		content.Set("className", "notification-content")
		msg := p.doc.Call("createElement", "span")
		msg.Set("className", "notification-message")
		msg.Set("textContent", t.Message)
		closeBtn := p.doc.Call("createElement", "button")
		closeBtn.Set("className", "notification-close")
		closeBtn.Set("textContent", "×")
		id := t.ID
		p.on(closeBtn, "click", func(_, _ js.Value) {
			p.dispatch(func(s ui.State) ui.Update { return s.CloseNotification(id) })
		})
		content.Call("appendChild", msg)
		content.Call("appendChild", closeBtn)
		el.Call("appendChild", content)
		p.doc.Get("body").Call("appendChild", el)
		p.toastEl = el
	}

	style := p.toastEl.Get("style")
	if t.Phase == ui.PhaseVisible {
		style.Set("opacity", "1")
		style.Set("transform", "translateX(0)")
	} else {
		style.Set("opacity", "0")
		style.Set("transform", "translateX(100%)")
	}
}

// track forwards analytics events to gtag when the page loads it, and to the console otherwise.
func (p *page) track(events []ui.Event) {
	for _, e := range events {
		props := js.Global().Get("Object").New()
		for k, v := range e.Props {
			props.Set(k, v)
		}
		if gtag := js.Global().Get("gtag"); gtag.Type() == js.TypeFunction {
			gtag.Invoke("event", e.Name, props)
			continue
		}
		js.Global().Get("console").Call("log", "Analytics Event:", e.Name, props)
	}
}

func setClass(el js.Value, class string, on bool) {
	if el.IsNull() || el.IsUndefined() {
		return
	}
	el.Get("classList").Call("toggle", class, on)
}

func logError(msg string) {
	js.Global().Get("console").Call("error", msg)
}
