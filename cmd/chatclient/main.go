package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	pb "teammate-chat/proto/chat/v1"
	"time"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string `env:"CHAT_SERVER_ADDR,default=localhost:8080"`
	Token         string `env:"CHAT_TOKEN,required=true"`
	Peer          string `env:"CHAT_PEER"`
	LogLevel      string `env:"LOG_LEVEL,default=INFO"`
}

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run opens a Session stream, turns stdin lines into frames and prints
// what changed in each received view.
func run() (int, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := grpc.NewClient(config.ServerAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to server at %s: %w", config.ServerAddress, err)
	}
	defer func() {
		log.Info("Closing connection...")
		_ = conn.Close()
	}()

	ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+config.Token)
	stream, err := pb.NewChatServiceClient(conn).Session(ctx)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open session: %w", err)
	}
	if config.Peer != "" {
		if err := stream.Send(openDirect(config.Peer)); err != nil {
			return exitRuntime, err
		}
	}
	fmt.Println(color.Gray.Sprint("/open <peer>, /select <conversation-id>, anything else is sent. Ctrl+C to quit."))

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer func() { _ = stream.CloseSend() }()
		return readInput(gCtx, os.Stdin, stream)
	})
	g.Go(func() error {
		var printer viewPrinter
		for {
			view, err := stream.Recv()
			if err == io.EOF || gCtx.Err() != nil {
				return nil
			}
			if err != nil {
				return fmt.Errorf("stream error: %w", err)
			}
			printer.print(view)
		}
	})
	if err := g.Wait(); err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}

func readInput(ctx context.Context, r io.Reader, stream pb.ChatService_SessionClient) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			for _, frame := range toFrames(line) {
				if err := stream.Send(frame); err != nil {
					return err
				}
			}
		}
	}
}

// toFrames maps a line to session frames. Plain text goes through Input
// first so peers see the typing indicator.
func toFrames(line string) []*pb.SessionFrame {
	line = strings.TrimSpace(line)
	command, arg, _ := strings.Cut(line, " ")
	switch command {
	case "":
		return nil
	case "/open":
		return []*pb.SessionFrame{openDirect(strings.TrimSpace(arg))}
	case "/select":
		return []*pb.SessionFrame{{Frame: &pb.SessionFrame_Select{
			Select: &pb.SelectFrame{ConversationId: strings.TrimSpace(arg)},
		}}}
	default:
		return []*pb.SessionFrame{
			{Frame: &pb.SessionFrame_Input{Input: &pb.InputFrame{Text: line}}},
			{Frame: &pb.SessionFrame_Send{Send: &pb.SendFrame{Text: line}}},
		}
	}
}

func openDirect(peer string) *pb.SessionFrame {
	return &pb.SessionFrame{Frame: &pb.SessionFrame_OpenDirect{OpenDirect: &pb.OpenDirectFrame{PeerId: peer}}}
}

// viewPrinter prints only what is new since the previous view.
type viewPrinter struct {
	listed  int
	active  string
	printed map[string]struct{}
	typing  string
	errText string
}

func (p *viewPrinter) print(view *pb.SessionView) {
	if p.printed == nil {
		p.printed = map[string]struct{}{}
	}
	if view.ActiveConversation == nil {
		if len(view.Conversations) != p.listed {
			for _, c := range view.Conversations {
				fmt.Printf("%s %s\n", color.Yellow.Sprint(c.Id), strings.Join(c.Members, ", "))
			}
			p.listed = len(view.Conversations)
		}
		p.active = ""
	} else if view.ActiveConversation.Id != p.active {
		p.active = view.ActiveConversation.Id
		p.printed = map[string]struct{}{}
		fmt.Println(color.Green.Sprintf("== %s ==", strings.Join(view.ActiveConversation.Members, ", ")))
	}

	for _, m := range view.Messages {
		if _, ok := p.printed[m.Id]; ok {
			continue
		}
		p.printed[m.Id] = struct{}{}
		name := m.Sender
		if display, ok := view.DisplayNames[m.Sender]; ok && display != "" {
			name = display
		}
		fmt.Printf("[%s] %s: %s\n", m.GetCreatedAt().AsTime().Local().Format(time.TimeOnly), color.Cyan.Sprint(name), m.Content)
	}

	typing := strings.Join(view.Typing, ", ")
	if typing != p.typing && typing != "" {
		fmt.Println(color.Gray.Sprintf("%s typing...", typing))
	}
	p.typing = typing

	if view.Error != "" && view.Error != p.errText {
		fmt.Println(color.Red.Sprint(view.Error))
	}
	p.errText = view.Error
}
