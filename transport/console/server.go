package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

var (
	errQuit         = errors.New("quit")
	ErrNoActiveGame = errors.New("no active game, type \"new\" first")
	ErrBadCommand   = errors.New("unknown command, type \"help\"")
)

type uGame interface {
	StartGame(ctx context.Context, size int, mode string) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, position int) (*usecase.TurnResult, error)
	EndGame(ctx context.Context, gameID string) error
	Scores(ctx context.Context) (map[string]int64, error)
}

// Server reads one command per line and writes plain text back.
type Server struct {
	logger *slog.Logger
	uGame  uGame

	defaultSize int
	game        *entity.Game
	out         io.Writer

	handlers map[string]func(ctx context.Context, args []string) error
}

func New(logger *slog.Logger, uGame uGame, defaultSize int) *Server {
	server := &Server{
		logger:      logger.With("component", "console"),
		uGame:       uGame,
		defaultSize: defaultSize,

		handlers: make(map[string]func(context.Context, []string) error),
	}

	server.handlers["new"] = server.handleNewGame
	server.handlers["move"] = server.handleMove
	server.handlers["scores"] = server.handleScores
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit

	return server
}

// Run processes commands from in until EOF, "quit" or context cancellation.
func (that *Server) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	that.out = out

	if err := that.handleHelp(ctx, nil); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}

		err := that.dispatch(ctx, strings.Fields(scanner.Text()))
		if errors.Is(err, errQuit) {
			return nil
		}

		if err != nil {
			that.logger.Debug("command failed", "error", err)
			that.printf("error: %v\n", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

func (that *Server) dispatch(ctx context.Context, fields []string) error {
	if len(fields) == 0 {
		return nil
	}

	// a bare number is a move
	if _, err := strconv.Atoi(fields[0]); err == nil {
		return that.handleMove(ctx, fields)
	}

	handler, ok := that.handlers[strings.ToLower(fields[0])]
	if !ok {
		return ErrBadCommand
	}

	return handler(ctx, fields[1:])
}

func (that *Server) handleNewGame(ctx context.Context, args []string) error {
	mode, size := entity.ModePvC, that.defaultSize

	if len(args) > 0 {
		mode = strings.ToLower(args[0])
	}

	if len(args) > 1 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("board size must be an integer: %q", args[1])
		}
		size = parsed
	}

	game, err := that.uGame.StartGame(ctx, size, mode)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.game = game
	that.printf("new %s game %dx%d, %s to move\n", game.Mode, size, size, game.Turn)
	that.printBoard(game.Board)

	return nil
}

func (that *Server) handleMove(ctx context.Context, args []string) error {
	if that.game == nil {
		return ErrNoActiveGame
	}

	if len(args) == 0 {
		return fmt.Errorf("%w: missing position", ErrBadCommand)
	}

	position, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("position must be an integer: %q", args[0])
	}

	result, err := that.uGame.MakeTurn(ctx, that.game.ID, position)
	if err != nil {
		return err
	}

	that.game = result.Game

	for _, move := range result.Moves {
		if move.Mark == that.game.Computer && that.game.IsWithComputer() {
			that.printf("computer plays %d\n", move.Position)
		}
	}

	that.printBoard(result.Board)

	if !result.Outcome.IsTerminal() {
		that.printf("%s to move\n", result.Game.Turn)
		return nil
	}

	if result.Outcome.IsDraw() {
		that.printf("It's a draw!\n")
	} else {
		that.printf("%s wins!\n", result.Outcome.Winner)
	}

	if err = that.handleScores(ctx, nil); err != nil {
		return err
	}

	that.printf("board reset, %s to move\n", result.Game.Turn)

	return nil
}

func (that *Server) handleScores(ctx context.Context, _ []string) error {
	scores, err := that.uGame.Scores(ctx)
	if err != nil {
		return fmt.Errorf("failed to get scores: %w", err)
	}

	that.printf("PvP O: %d, PvP X: %d, PvC: %d\n", scores["PvP_O"], scores["PvP_X"], scores["PvC"])

	return nil
}

func (that *Server) handleHelp(_ context.Context, _ []string) error {
	that.printf("commands: new [pvp|pvc] [size], move <cell> or just <cell>, scores, quit\n")
	return nil
}

func (that *Server) handleQuit(ctx context.Context, _ []string) error {
	if that.game != nil {
		if err := that.uGame.EndGame(ctx, that.game.ID); err != nil {
			that.logger.Error("failed to end game", "gameID", that.game.ID, "error", err)
		}
		that.game = nil
	}

	return errQuit
}

// printBoard writes one line per row; empty cells show their position number.
func (that *Server) printBoard(board *entity.Board) {
	width := len(strconv.Itoa(board.Len()))

	for row := 0; row < board.Size; row++ {
		cells := make([]string, 0, board.Size)
		for column := 0; column < board.Size; column++ {
			position := row*board.Size + column + 1

			cell := string(board.Cell(position))
			if cell == "" {
				cell = strconv.Itoa(position)
			}
			cells = append(cells, fmt.Sprintf("%*s", width, cell))
		}
		that.printf("%s\n", strings.Join(cells, " "))
	}
}

func (that *Server) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
