package createpayment

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/AllxdDev-Hosting/Rest-Api/internal/domain/entity"
	"github.com/AllxdDev-Hosting/Rest-Api/internal/domain/qrimage"
	"github.com/AllxdDev-Hosting/Rest-Api/internal/domain/qris"
)

type Request struct {
	Amount int64
	// Template overrides the operator-configured static code when set.
	Template string
}

type Response struct {
	TransactionID string
	Amount        int64
	Payload       string
	ImageURL      string
	ExpiresAt     time.Time
}

type UseCase struct {
	renderer        qrimage.Renderer
	uploader        qrimage.Uploader
	defaultTemplate string
	validity        time.Duration
}

func NewUseCase(renderer qrimage.Renderer, uploader qrimage.Uploader, defaultTemplate string, validity time.Duration) *UseCase {
	return &UseCase{
		renderer:        renderer,
		uploader:        uploader,
		defaultTemplate: defaultTemplate,
		validity:        validity,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", qris.ErrInvalidAmount)
	}

	template := req.Template
	if template == "" {
		template = uc.defaultTemplate
	}

	payload, err := qris.ComposeDynamic(template, strconv.FormatInt(req.Amount, 10))
	if err != nil {
		return nil, err
	}

	png, err := uc.renderer.Render(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", qrimage.ErrRenderFailed, err)
	}

	imageURL, err := uc.uploader.Upload(ctx, png)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", qrimage.ErrUploadFailed, err)
	}

	txn := entity.NewTransaction(req.Amount, payload, imageURL, uc.validity)

	return &Response{
		TransactionID: txn.ID().String(),
		Amount:        txn.Amount(),
		Payload:       txn.Payload(),
		ImageURL:      txn.ImageURL(),
		ExpiresAt:     txn.ExpiresAt(),
	}, nil
}
