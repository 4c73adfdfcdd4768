// Command cli_chat is a local REPL against the chat assistant, useful for
// trying prompts without the HTTP layer. Runs in demo mode when no credential
// is configured.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"counselling-site/internal/config"
	"counselling-site/internal/domain"
	"counselling-site/internal/llm"
	"counselling-site/internal/service"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	site, err := config.LoadSite(cfg.SiteConfigPath)
	if err != nil {
		log.Fatal(err)
	}

	provider, err := llm.NewProvider(cfg.ChatProvider, cfg.ChatBaseURL, cfg.ChatAPIKey, cfg.ChatModel, logger)
	if err != nil {
		log.Fatal(err)
	}

	chatSvc := service.NewChatService(provider, site, logger)

	userPrompt := color.New(color.FgCyan, color.Bold)
	assistantLabel := color.New(color.FgGreen, color.Bold)

	fmt.Printf("%s chat assistant. Type 'exit' to quit.\n", site.Name)
	if provider == nil {
		color.Yellow("no credential configured, running in demo mode")
	}

	var history []domain.ChatMessage
	for {
		userPrompt.Print("you> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			return
		}

		history = append(history, domain.ChatMessage{Role: domain.RoleUser, Content: line})

		reply := chatSvc.Reply(ctx, history)
		history = append(history, domain.ChatMessage{Role: domain.RoleAssistant, Content: reply.Content})

		assistantLabel.Print("assistant> ")
		fmt.Println(reply.Content)
	}
}
