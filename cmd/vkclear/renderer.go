package main

import (
	"fmt"
	"math"
	"runtime"

	"go.uber.org/zap"

	vk "github.com/NOT-REAL-GAMES/vk"
	"github.com/NOT-REAL-GAMES/vk/internal/swapchain"
)

// frameState holds everything submit and present point at. It is pinned for
// the lifetime of the renderer.
type frameState struct {
	imageAvailable vk.Semaphore
	renderFinished vk.Semaphore
	inFlight       vk.Fence
	cmd            vk.CommandBuffer
	waitStage      vk.PipelineStageFlags
	swapchain      vk.SwapchainKHR
	imageIndex     uint32
}

type renderer struct {
	e      vk.Enhanced
	device vk.Device
	queue  vk.Queue
	sc     *swapchain.Swapchain
	pool   vk.CommandPool
	frame  *frameState
	pinner runtime.Pinner
	log    *zap.Logger
}

func newRenderer(e vk.Enhanced, device vk.Device, queue vk.Queue, family uint32, sc *swapchain.Swapchain, log *zap.Logger) (*renderer, error) {
	r := &renderer{
		e:      e,
		device: device,
		queue:  queue,
		sc:     sc,
		frame: &frameState{
			waitStage: vk.FlagsOf(vk.PIPELINE_STAGE_TRANSFER_BIT),
			swapchain: sc.Handle,
		},
		log: log,
	}
	r.pinner.Pin(r.frame)

	var res vk.Result
	poolInfo := vk.MakeCommandPoolCreateInfo(vk.FlagsOf(vk.COMMAND_POOL_CREATE_RESET_COMMAND_BUFFER_BIT), family)
	if r.pool, res = e.CreateCommandPool(device, &poolInfo, nil); res != vk.SUCCESS {
		r.destroy()
		return nil, fmt.Errorf("create command pool: %w", res)
	}

	allocInfo := vk.MakeCommandBufferAllocateInfo(r.pool, vk.COMMAND_BUFFER_LEVEL_PRIMARY, 1)
	cmds, res := e.AllocateCommandBuffers(device, &allocInfo)
	if res != vk.SUCCESS {
		r.destroy()
		return nil, fmt.Errorf("allocate command buffer: %w", res)
	}
	r.frame.cmd = cmds[0]

	semInfo := vk.MakeSemaphoreCreateInfo(0)
	if r.frame.imageAvailable, res = e.CreateSemaphore(device, &semInfo, nil); res != vk.SUCCESS {
		r.destroy()
		return nil, fmt.Errorf("create semaphore: %w", res)
	}
	if r.frame.renderFinished, res = e.CreateSemaphore(device, &semInfo, nil); res != vk.SUCCESS {
		r.destroy()
		return nil, fmt.Errorf("create semaphore: %w", res)
	}

	// Signaled so the first frame does not wait forever.
	fenceInfo := vk.MakeFenceCreateInfo(vk.FlagsOf(vk.FENCE_CREATE_SIGNALED_BIT))
	if r.frame.inFlight, res = e.CreateFence(device, &fenceInfo, nil); res != vk.SUCCESS {
		r.destroy()
		return nil, fmt.Errorf("create fence: %w", res)
	}
	return r, nil
}

// draw clears the next swapchain image to color and presents it. It returns
// SUBOPTIMAL or OUT_OF_DATE without an error when the swapchain no longer
// matches the surface.
func (r *renderer) draw(color vk.ClearColorValue) (vk.Result, error) {
	f := r.frame

	if res := r.e.WaitForFences(r.device, 1, &f.inFlight, true, math.MaxUint64); res != vk.SUCCESS {
		return res, fmt.Errorf("wait for fence: %w", res)
	}

	index, res := r.e.AcquireNextImageKHR(r.device, f.swapchain, math.MaxUint64, f.imageAvailable, vk.NULL_HANDLE)
	switch res {
	case vk.SUCCESS, vk.SUBOPTIMAL:
	case vk.OUT_OF_DATE:
		return res, nil
	default:
		return res, fmt.Errorf("acquire image: %w", res)
	}
	f.imageIndex = index

	if res := r.e.ResetFences(r.device, 1, &f.inFlight); res != vk.SUCCESS {
		return res, fmt.Errorf("reset fence: %w", res)
	}
	if res := r.e.ResetCommandBuffer(f.cmd, 0); res != vk.SUCCESS {
		return res, fmt.Errorf("reset command buffer: %w", res)
	}
	if err := r.record(f.cmd, r.sc.Images[index], color); err != nil {
		return vk.SUCCESS, err
	}

	submit := vk.MakeSubmitInfo(1, &f.imageAvailable, &f.waitStage, 1, &f.cmd, 1, &f.renderFinished)
	if res := r.e.QueueSubmit(r.queue, 1, &submit, f.inFlight); res != vk.SUCCESS {
		return res, fmt.Errorf("queue submit: %w", res)
	}

	present := vk.MakePresentInfoKHR(1, &f.renderFinished, 1, &f.swapchain, &f.imageIndex, nil)
	res = r.e.QueuePresentKHR(r.queue, &present)
	switch res {
	case vk.SUCCESS, vk.SUBOPTIMAL, vk.OUT_OF_DATE:
		return res, nil
	default:
		return res, fmt.Errorf("present: %w", res)
	}
}

// record transitions image for a transfer write, clears it and hands it to
// the presentation engine.
func (r *renderer) record(cmd vk.CommandBuffer, image vk.Image, color vk.ClearColorValue) error {
	begin := vk.MakeCommandBufferBeginInfo(vk.FlagsOf(vk.COMMAND_BUFFER_USAGE_ONE_TIME_SUBMIT_BIT), nil)
	if res := r.e.BeginCommandBuffer(cmd, &begin); res != vk.SUCCESS {
		return fmt.Errorf("begin command buffer: %w", res)
	}

	rng := swapchain.ColorRange()
	toTransfer := vk.MakeImageMemoryBarrier(
		0, vk.FlagsOf(vk.ACCESS_TRANSFER_WRITE_BIT),
		vk.IMAGE_LAYOUT_UNDEFINED, vk.IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL,
		vk.QUEUE_FAMILY_IGNORED, vk.QUEUE_FAMILY_IGNORED,
		image, rng,
	)
	r.e.CmdPipelineBarrier(cmd,
		vk.FlagsOf(vk.PIPELINE_STAGE_TOP_OF_PIPE_BIT), vk.FlagsOf(vk.PIPELINE_STAGE_TRANSFER_BIT),
		0, 0, nil, 0, nil, 1, &toTransfer,
	)

	r.e.CmdClearColorImageRanges(cmd, image, vk.IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL, color, []vk.ImageSubresourceRange{rng})

	toPresent := vk.MakeImageMemoryBarrier(
		vk.FlagsOf(vk.ACCESS_TRANSFER_WRITE_BIT), 0,
		vk.IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL, vk.IMAGE_LAYOUT_PRESENT_SRC_KHR,
		vk.QUEUE_FAMILY_IGNORED, vk.QUEUE_FAMILY_IGNORED,
		image, rng,
	)
	r.e.CmdPipelineBarrier(cmd,
		vk.FlagsOf(vk.PIPELINE_STAGE_TRANSFER_BIT), vk.FlagsOf(vk.PIPELINE_STAGE_BOTTOM_OF_PIPE_BIT),
		0, 0, nil, 0, nil, 1, &toPresent,
	)

	if res := r.e.EndCommandBuffer(cmd); res != vk.SUCCESS {
		return fmt.Errorf("end command buffer: %w", res)
	}
	return nil
}

// destroy releases whatever newRenderer managed to create. The device must be
// idle.
func (r *renderer) destroy() {
	f := r.frame
	if f.inFlight != vk.NULL_HANDLE {
		r.e.DestroyFence(r.device, f.inFlight, nil)
	}
	if f.renderFinished != vk.NULL_HANDLE {
		r.e.DestroySemaphore(r.device, f.renderFinished, nil)
	}
	if f.imageAvailable != vk.NULL_HANDLE {
		r.e.DestroySemaphore(r.device, f.imageAvailable, nil)
	}
	if r.pool != vk.NULL_HANDLE {
		// Freeing the pool frees its command buffers.
		r.e.DestroyCommandPool(r.device, r.pool, nil)
	}
	r.pinner.Unpin()
	r.log.Debug("renderer destroyed")
}

// frameColor fades from red to blue over period frames and back.
func frameColor(frame, period int) vk.ClearColorValue {
	if period <= 0 {
		period = 1
	}
	t := float64(frame%period) / float64(period)
	w := float32(0.5 - 0.5*math.Cos(2*math.Pi*t))
	return vk.ClearColorFloat32(1-w, 0.1, w, 1)
}
