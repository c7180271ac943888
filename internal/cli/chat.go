package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/polypal/internal/conversation"
	"github.com/at-ishikawa/polypal/internal/dictionary"
	"github.com/at-ishikawa/polypal/internal/errorlog"
	"github.com/at-ishikawa/polypal/internal/scenario"
	"github.com/at-ishikawa/polypal/internal/settings"
)

const chatHelp = `Comandos:
  /mode <general|scenarios|teacher>  cambiar de modo
  /scenario [id]                     empezar un escenario o listarlos
  /translate <palabra>               traducir una palabra
  /save                              guardar la última corrección
  /errors                            ver los últimos errores guardados
  /clear                             borrar la conversación
  /quit                              salir
`

// ChatCLI is the interactive tutoring session in the terminal
type ChatCLI struct {
	*InteractiveCLI
	conversation *conversation.Conversation
	translator   *dictionary.Translator
	errorLog     *errorlog.Store
	settings     *settings.Store
	scenarios    *scenario.Catalog
}

func NewChatCLI(
	conv *conversation.Conversation,
	translator *dictionary.Translator,
	errorLog *errorlog.Store,
	settingsStore *settings.Store,
	scenarios *scenario.Catalog,
	opts ...Option,
) *ChatCLI {
	return &ChatCLI{
		InteractiveCLI: newInteractiveCLI(opts...),
		conversation:   conv,
		translator:     translator,
		errorLog:       errorLog,
		settings:       settingsStore,
		scenarios:      scenarios,
	}
}

func (c *ChatCLI) Welcome() {
	_, _ = c.bold.Fprintln(c.stdoutWriter, "PolyPal 🇫🇷 Tu tutor de francés")
	c.printf("Modo: %s. Escribe en francés o /help para ver los comandos.\n\n", c.conversation.Mode())
}

func (c *ChatCLI) Session(ctx context.Context) error {
	_, _ = c.bold.Fprint(c.stdoutWriter, "Tú: ")
	line, err := c.readLine()
	if err != nil {
		return err
	}
	if line == "" {
		return nil
	}
	if strings.HasPrefix(line, "/") {
		return c.command(ctx, line)
	}
	return c.submit(ctx, line)
}

func (c *ChatCLI) submit(ctx context.Context, text string) error {
	replies, err := c.conversation.Submit(ctx, text)
	if errors.Is(err, conversation.ErrTurnInProgress) {
		_, _ = c.yellow.Fprintln(c.stdoutWriter, "Espera la respuesta anterior.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("conversation.Submit() > %w", err)
	}

	for _, reply := range replies {
		c.printEntry(reply)
		if reply.Correction != nil && c.settings.AutoCorrectionsEnabled() {
			c.saveCorrection(ctx, *reply.Correction)
		}
	}
	c.println()
	return nil
}

func (c *ChatCLI) printEntry(entry conversation.Entry) {
	switch entry.Kind {
	case conversation.KindCorrection:
		_, _ = c.red.Fprintf(c.stdoutWriter, "❌ %s\n", entry.Correction.Original)
		_, _ = c.green.Fprintf(c.stdoutWriter, "✅ %s\n", entry.Correction.Corrected)
		c.printf("   %s\n", entry.Correction.Explanation)
	case conversation.KindCulturalTip:
		_, _ = c.yellow.Fprintf(c.stdoutWriter, "💡 %s: ", entry.Tip.Title)
		c.println(entry.Tip.Content)
	default:
		_, _ = c.bold.Fprint(c.stdoutWriter, "PolyPal: ")
		c.println(entry.Text)
	}
}

func (c *ChatCLI) saveCorrection(ctx context.Context, correction conversation.Correction) {
	_, added, err := c.errorLog.Add(correction.Original, correction.Corrected, correction.Explanation)
	if err != nil {
		slog.Default().Error("Failed to add a correction to the error log", "error", err)
		return
	}
	if !added {
		c.println("📝 Ya estaba en el registro de errores.")
		return
	}
	if err := c.errorLog.Save(ctx); err != nil {
		slog.Default().Warn("Failed to save the error log", "error", err)
	}
	c.println("📝 Guardado en el registro de errores.")
}

func (c *ChatCLI) command(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	name, args := fields[0], fields[1:]

	switch name {
	case "/quit", "/exit":
		c.println("À bientôt !")
		return errEnd
	case "/help":
		c.printf("%s", chatHelp)
	case "/clear":
		if err := c.conversation.Clear(); err != nil {
			c.println(err.Error())
			return nil
		}
		c.println("Conversación borrada.")
	case "/mode":
		c.switchMode(args)
	case "/scenario":
		c.startScenario(args)
	case "/translate":
		c.translate(ctx, args)
	case "/save":
		correction, ok := c.conversation.LatestCorrection()
		if !ok {
			c.println("No hay ninguna corrección para guardar.")
			return nil
		}
		c.saveCorrection(ctx, correction)
	case "/errors":
		c.listErrors()
	default:
		c.printf("Comando desconocido: %s. Escribe /help.\n", name)
	}
	return nil
}

func (c *ChatCLI) switchMode(args []string) {
	if len(args) != 1 {
		c.println("Uso: /mode <general|scenarios|teacher>")
		return
	}
	mode, err := conversation.ParseMode(args[0])
	if err != nil {
		c.println(err.Error())
		return
	}
	if err := c.conversation.SwitchMode(mode, ""); err != nil {
		c.println(err.Error())
		return
	}
	c.printf("Modo: %s\n", mode)
}

func (c *ChatCLI) startScenario(args []string) {
	if len(args) == 0 {
		for _, s := range c.scenarios.All() {
			c.printf("%s %s: %s\n", s.Icon, s.ID, s.Title)
		}
		return
	}
	entry, err := c.conversation.StartScenario(args[0])
	if err != nil {
		c.println(err.Error())
		return
	}
	c.printEntry(entry)
	c.println()
}

func (c *ChatCLI) translate(ctx context.Context, args []string) {
	if len(args) == 0 {
		c.println("Uso: /translate <palabra>")
		return
	}
	for _, word := range args {
		translation, err := c.translator.Translate(ctx, word)
		if errors.Is(err, dictionary.ErrNotTranslatable) {
			c.printf("No se puede traducir «%s».\n", word)
			continue
		}
		if err != nil {
			c.println(err.Error())
			continue
		}
		c.printTranslation(translation)
	}
}

func (c *ChatCLI) printTranslation(translation dictionary.Translation) {
	_, _ = c.bold.Fprint(c.stdoutWriter, translation.Word)
	c.printf(" → %s", translation.Translation)
	if translation.PartOfSpeech != "" {
		c.printf(" (%s)", c.italic.Sprint(translation.PartOfSpeech))
	}
	c.println()
	if translation.Definition != "" {
		c.printf("   %s\n", translation.Definition)
	}
	for _, example := range translation.Examples {
		c.printf("   • %s\n", example)
	}
}

func (c *ChatCLI) listErrors() {
	entries := c.errorLog.Recent(errorlog.DefaultRecentLimit)
	if len(entries) == 0 {
		c.println("No hay errores guardados.")
		return
	}
	for _, entry := range entries {
		_, _ = c.red.Fprintf(c.stdoutWriter, "❌ %s", entry.OriginalText)
		c.printf(" → ")
		_, _ = c.green.Fprintf(c.stdoutWriter, "%s\n", entry.CorrectedText)
	}
}
