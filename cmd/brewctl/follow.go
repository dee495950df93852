package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"brew/internal/domain/entity"
	"brew/internal/usecase"
	"brew/internal/util"

	"github.com/pkg/errors"
)

const pollInterval = 250 * time.Millisecond

// follow prints every status the order goes through until it completes. At the paying stage
// it confirms payment with details, or stops there when none were given.
func (c *client) follow(ctx context.Context, orderID string, details *usecase.PaymentDetails) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var last entity.OrderStatus
	paid := false
	for {
		order := c.Order.ActiveOrder()
		if order == nil || order.ID != orderID {
			return errors.Errorf("order %s is no longer active", orderID)
		}

		if order.Status != last {
			fmt.Fprintln(c.out, statusLine(order))
			last = order.Status
		}
		c.flushNotices()

		switch {
		case order.Status.IsTerminal():
			return c.printReceipt(order)

		case order.Status.AwaitsUser() && !paid:
			if details == nil {
				fmt.Fprintln(c.out, "Order is waiting for payment; run `brewctl resume` with a payment flag")

				return nil
			}

			transition, err := c.Order.ConfirmPayment(ctx, *details)
			if err != nil {
				return err
			}
			paid = true
			if transition.Diverged() {
				fmt.Fprintf(os.Stderr, "warning: payment recorded locally only: %v\n", transition.Cause)
			}
		}

		select {
		case <-ctx.Done():
			return errors.Wrapf(ctx.Err(), "stopped following order %s at %s", orderID, last)
		case <-ticker.C:
		}
	}
}

func (c *client) printReceipt(order *entity.Order) error {
	receipt, err := c.QRCode.RenderReceiptTerminal(order)
	if err != nil {
		return errors.Wrap(err, "failed to render receipt")
	}

	fmt.Fprintf(c.out, "Order %s completed, total %s\n%s", order.ID, util.FormatAmount(order.Total()), receipt)

	return nil
}

// flushNotices writes notices raised since the last flush to stderr.
func (c *client) flushNotices() {
	for _, n := range c.Notifier.Since(c.lastNotice) {
		fmt.Fprintf(os.Stderr, "%s: %s\n", n.Level, n.Message)
		c.lastNotice = n.ID
	}
}
