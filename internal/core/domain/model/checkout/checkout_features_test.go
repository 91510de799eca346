package checkout_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/model/kernel"

	"github.com/cucumber/godog"
)

type checkoutFeature struct {
	session *checkout.Session
	orders  []checkout.FinalizedOrder
}

func (f *checkoutFeature) reset() {
	f.session = nil
	f.orders = nil
}

func (f *checkoutFeature) aNewCheckout() error {
	session, err := checkout.NewSession(kernel.NewUUID(), checkout.DefaultPickupPoints, time.Now())
	if err != nil {
		return err
	}
	f.session = session
	return nil
}

func (f *checkoutFeature) fieldIsSetTo(name, value string) error {
	field, err := checkout.ParseField(name)
	if err != nil {
		return err
	}
	return f.session.UpdateField(field, value)
}

func (f *checkoutFeature) validBillingDetails() error {
	for field, value := range map[string]string{
		"name":    "Kiss Anna",
		"email":   "anna@example.hu",
		"address": "Budapest, Váci út 1-3.",
	} {
		if err := f.fieldIsSetTo(field, value); err != nil {
			return err
		}
	}
	return nil
}

func (f *checkoutFeature) iGoToTheNextStep() error {
	f.session.Advance()
	return nil
}

func (f *checkoutFeature) iGoBack() error {
	f.session.Retreat()
	return nil
}

func (f *checkoutFeature) iOpenThePickupSelector() error {
	f.session.OpenPickupSelector()
	return nil
}

func (f *checkoutFeature) iCloseThePickupSelector() error {
	f.session.ClosePickupSelector()
	return nil
}

func (f *checkoutFeature) iSelectPickupPoint(point string) error {
	return f.session.SelectPickupPoint(point)
}

// Finalize outcomes are checked by later steps, so errors are not fatal here.
func (f *checkoutFeature) iFinalize() error {
	order, err := f.session.Finalize(time.Now())
	if err == nil {
		f.orders = append(f.orders, order)
	}
	return nil
}

func (f *checkoutFeature) theStepIs(name string) error {
	if got := f.session.Step().String(); got != name {
		return fmt.Errorf("expected step %q, got %q", name, got)
	}
	return nil
}

func (f *checkoutFeature) fieldHasError(name, message string) error {
	field, err := checkout.ParseField(name)
	if err != nil {
		return err
	}
	if got := f.session.Errors().Get(field); got != message {
		return fmt.Errorf("expected %s error %q, got %q", name, message, got)
	}
	return nil
}

func (f *checkoutFeature) onlyFieldHasAnError(name string) error {
	fields := f.session.Errors().Fields()
	if len(fields) != 1 || string(fields[0]) != name {
		return fmt.Errorf("expected only %s to be invalid, got %v", name, fields)
	}
	return nil
}

func (f *checkoutFeature) fieldIs(name, value string) error {
	field, err := checkout.ParseField(name)
	if err != nil {
		return err
	}
	if got := f.session.Draft().Value(field); got != value {
		return fmt.Errorf("expected %s %q, got %q", name, value, got)
	}
	return nil
}

func (f *checkoutFeature) thePickupSelectorIsClosed() error {
	if f.session.PickupSelector().IsOpen() {
		return fmt.Errorf("expected the pickup selector to be closed")
	}
	return nil
}

func (f *checkoutFeature) theOrderIsHandedOver(times int) error {
	if len(f.orders) != times {
		return fmt.Errorf("expected %d handed over orders, got %d", times, len(f.orders))
	}
	return nil
}

func initializeCheckoutScenario(ctx *godog.ScenarioContext) {
	f := &checkoutFeature{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		f.reset()
		return ctx, nil
	})

	ctx.Step(`^a new checkout$`, f.aNewCheckout)
	ctx.Step(`^valid billing details$`, f.validBillingDetails)
	ctx.Step(`^field "([^"]*)" is "([^"]*)"$`, f.fieldIsSetTo)
	ctx.Step(`^I set field "([^"]*)" to "([^"]*)"$`, f.fieldIsSetTo)
	ctx.Step(`^I go to the next step$`, f.iGoToTheNextStep)
	ctx.Step(`^I go back$`, f.iGoBack)
	ctx.Step(`^I open the pickup selector$`, f.iOpenThePickupSelector)
	ctx.Step(`^I close the pickup selector$`, f.iCloseThePickupSelector)
	ctx.Step(`^I select pickup point "([^"]*)"$`, f.iSelectPickupPoint)
	ctx.Step(`^I finalize$`, f.iFinalize)

	ctx.Step(`^the step is "([^"]*)"$`, f.theStepIs)
	ctx.Step(`^field "([^"]*)" has error "([^"]*)"$`, f.fieldHasError)
	ctx.Step(`^only field "([^"]*)" has an error$`, f.onlyFieldHasAnError)
	ctx.Step(`^the draft field "([^"]*)" is "([^"]*)"$`, f.fieldIs)
	ctx.Step(`^the pickup selector is closed$`, f.thePickupSelectorIsClosed)
	ctx.Step(`^the order is handed over (\d+) times?$`, f.theOrderIsHandedOver)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeCheckoutScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
