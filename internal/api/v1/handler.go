package v1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wpwhiz/signalwire-woo/internal/constants"
	"github.com/wpwhiz/signalwire-woo/internal/model"
	"github.com/wpwhiz/signalwire-woo/internal/service"
	"go.uber.org/zap"
)

type Handler struct {
	logger  *zap.Logger
	notify  service.NotifyService
	inbound service.InboundService
}

func NewHandler(logger *zap.Logger, notify service.NotifyService, inbound service.InboundService) *Handler {
	return &Handler{logger: logger, notify: notify, inbound: inbound}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) Receive(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request InboundMessageRequest

	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse webhook body",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		})
	}

	cmd := service.InboundMessageCommand{
		AccountSID: request.AccountSid,
		From:       request.From,
		Body:       request.Body,
		ErrorCode:  request.ErrorCode,
	}

	if err := h.inbound.HandleMessage(ctx, cmd); err != nil {
		return err
	}

	// Unrecognized keywords are silently accepted so the provider does not
	// retry the webhook. The body stays empty.
	return c.Status(fiber.StatusOK).Send(nil)
}

func (h *Handler) OrderStatus(c *fiber.Ctx) error {
	ctx := c.UserContext()

	orderID, err := c.ParamsInt("id")
	if err != nil {
		h.logger.Warn("Invalid order id in path", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		})
	}

	var request OrderStatusRequest

	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse order status body",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		})
	}

	cmd := service.OrderStatusChangedCommand{
		OrderID:   int64(orderID),
		Status:    model.OrderStatus(request.Status),
		ForceSend: request.ForceSend,
	}

	result, err := h.notify.OrderStatusChanged(ctx, cmd)
	if err != nil {
		h.logger.Error("Failed to handle order status change",
			zap.Error(err),
			zap.Int("orderID", orderID),
			zap.String("status", request.Status))
		return err
	}

	if result.Skipped {
		return c.Status(fiber.StatusOK).JSON(
			OrderStatusResponse{Status: "skipped", Reason: result.SkipReason})
	}

	h.logger.Info("Order notification dispatched",
		zap.Int("orderID", orderID),
		zap.String("status", request.Status),
		zap.Int64("deliveryID", result.DeliveryID))

	return c.Status(fiber.StatusOK).JSON(
		OrderStatusResponse{Status: "dispatched", DeliveryID: result.DeliveryID})
}
